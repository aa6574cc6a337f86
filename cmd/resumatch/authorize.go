package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/resumatch/candidate-search/internal/core/access"
	"github.com/resumatch/candidate-search/internal/core/domain"
)

var (
	authorizePath string
	authorizeRole string
	authorizeJSON bool
)

var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Evaluate the route guard",
	Long:  "Print the route guard decision for a client route and a role. Omit --role to check an anonymous visitor.",
	Example: `  resumatch authorize --path /search --role recruiter
  resumatch authorize --path /admin/candidates --role recruiter
  resumatch authorize --path /upload-status`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var session domain.Session
		if authorizeRole != "" {
			session = domain.NewSession("cli", &domain.Account{ID: "cli", Username: "cli", Role: authorizeRole})
		}

		gate := access.NewGate(access.DefaultRoutes())
		decision := gate.AuthorizePath(session, authorizePath)

		if authorizeJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(decision)
		}
		printDecision(cmd.OutOrStdout(), authorizePath, session, decision)
		return nil
	},
}

func init() {
	authorizeCmd.Flags().StringVar(&authorizePath, "path", access.PathSearch, "Client route to check")
	authorizeCmd.Flags().StringVar(&authorizeRole, "role", "", "Role of the signed-in user (admin, recruiter, applicant)")
	authorizeCmd.Flags().BoolVar(&authorizeJSON, "json", false, "Print the decision as JSON")
	rootCmd.AddCommand(authorizeCmd)
}

func printDecision(w io.Writer, path string, s domain.Session, d access.Decision) {
	who := "anonymous"
	if s.Authenticated() {
		who = fmt.Sprintf("%s (%s)", s.Role(), s.UserType)
	}
	if d.Allow {
		fmt.Fprintf(w, "%s %s may open %s\n", allowStyle.Render("ALLOW"), who, path)
		return
	}
	fmt.Fprintf(w, "%s %s is sent from %s to %s\n", denyStyle.Render("REDIRECT"), who, path, d.RedirectTo)
}
