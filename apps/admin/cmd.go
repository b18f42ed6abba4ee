package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/account"
	"github.com/geekplay/foro/core/form"
	"github.com/geekplay/foro/core/forum"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp     = errors.New("help provided")
	errNotAdmin = errors.New("la cuenta no es de administrador")
)

type commandLine struct {
	out   io.Writer
	token string // session token of the admin, see login

	authSvc  account.AuthService
	adminSvc account.AdminService
	forumSvc forum.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL - sign in as an admin and print the session token (password prompted)")
	fmt.Fprintln(cli.out, "  users - list the accounts")
	fmt.Fprintln(cli.out, "  ban -id ID -reason REASON - ban an account")
	fmt.Fprintln(cli.out, "  unban -id ID - lift the ban of an account")
	fmt.Fprintln(cli.out, "  deletepost -id ID -reason REASON - delete a forum post, the author is notified")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(ioutil.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func checkReason(reason string) (string, error) {
	reason = core.CleanString(reason)
	if res := form.Required(reason); res.Failed() {
		return "", core.NewValidationError(nil, core.FieldError{Field: "reason", Error: res.Message()})
	}
	return reason, nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := newFlagSet("login")
	loginEmail := loginCmd.String("email", "", "The admin's email. The password will be prompted next.")

	usersCmd := newFlagSet("users")

	banCmd := newFlagSet("ban")
	banID := banCmd.Int64("id", 0, "The id of the account to ban.")
	banReason := banCmd.String("reason", "", "Why the account is banned.")

	unbanCmd := newFlagSet("unban")
	unbanID := unbanCmd.Int64("id", 0, "The id of the banned account.")

	deletePostCmd := newFlagSet("deletepost")
	deletePostID := deletePostCmd.Int64("id", 0, "The id of the post to delete.")
	deletePostReason := deletePostCmd.String("reason", "", "Why the post is deleted. Sent to the author.")

	ctx := context.Background()

	switch args[1] {
	case "login":
		if err := parse(loginCmd, args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		return cli.login(ctx, form.LoginForm{Email: core.CleanString(*loginEmail), Password: string(pwd)})

	case "users":
		if err := parse(usersCmd, args[2:]); err != nil {
			return err
		}
		return cli.users(ctx)

	case "ban":
		if err := parse(banCmd, args[2:]); err != nil {
			return err
		}
		if *banID <= 0 {
			banCmd.Usage()
			return errHelp
		}
		reason, err := checkReason(*banReason)
		if err != nil {
			return err
		}
		if err := cli.adminSvc.Ban(ctx, cli.token, *banID, reason); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "account %d banned\n", *banID)
		return nil

	case "unban":
		if err := parse(unbanCmd, args[2:]); err != nil {
			return err
		}
		if *unbanID <= 0 {
			unbanCmd.Usage()
			return errHelp
		}
		if err := cli.adminSvc.Unban(ctx, cli.token, *unbanID); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "account %d unbanned\n", *unbanID)
		return nil

	case "deletepost":
		if err := parse(deletePostCmd, args[2:]); err != nil {
			return err
		}
		if *deletePostID <= 0 {
			deletePostCmd.Usage()
			return errHelp
		}
		reason, err := checkReason(*deletePostReason)
		if err != nil {
			return err
		}
		if err := cli.forumSvc.DeletePost(ctx, cli.token, *deletePostID, reason); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "post %d deleted\n", *deletePostID)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, creds form.LoginForm) error {
	if err := form.ValidateLoginForm(creds).Err(); err != nil {
		return err
	}
	sess, err := cli.authSvc.Login(ctx, account.Credentials(creds))
	if err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return errNotAdmin
	}
	cli.token = sess.Token
	fmt.Fprintln(cli.out, sess.Token)
	return nil
}

func (cli *commandLine) users(ctx context.Context) error {
	users, err := cli.adminSvc.Users(ctx, cli.token)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROLE\tBANEADO")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Nombre, u.Email, u.Role, u.Baneado)
	}
	return w.Flush()
}
