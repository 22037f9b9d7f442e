package main

import (
	"strings"

	"github.com/Abraxas-365/campus/pkg/config"
	"github.com/Abraxas-365/campus/pkg/iam/auth"
	"github.com/Abraxas-365/campus/pkg/iam/auth/authinfra"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type createUserFlags struct {
	email    string
	password string
	role     string
	status   string
}

func newCreateUserCmd(configPath *string) *cobra.Command {
	var flags createUserFlags

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account for local testing or operator access",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := flags.user()
			if err != nil {
				return err
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logx.Configure(cfg.Log.Level, cfg.Log.Format)

			db, err := openDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := authinfra.NewPostgresUserRepository(db).Create(cmd.Context(), user); err != nil {
				return err
			}
			logx.WithFields(logx.Fields{"user_id": user.ID, "role": user.Role}).Infof("User created")
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.email, "email", "", "login email")
	cmd.Flags().StringVar(&flags.password, "password", "", "plain password, stored as a bcrypt hash")
	cmd.Flags().StringVar(&flags.role, "role", "", "admin, company, jobseeker or agent")
	cmd.Flags().StringVar(&flags.status, "status", string(auth.UserStatusApproved), "account status")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

// user validates the flags and builds the record to insert
func (f createUserFlags) user() (*auth.User, error) {
	email := strings.TrimSpace(f.email)
	role := auth.Role(strings.ToLower(strings.TrimSpace(f.role)))
	status := auth.UserStatus(strings.ToLower(strings.TrimSpace(f.status)))

	if email == "" || !strings.Contains(email, "@") {
		return nil, auth.ErrInvalidUser().WithDetail("field", "email")
	}
	if !role.IsValid() {
		return nil, auth.ErrInvalidUser().WithDetail("field", "role")
	}
	if !status.IsValid() {
		return nil, auth.ErrInvalidUser().WithDetail("field", "status")
	}

	hash, err := auth.HashPassword(f.password)
	if err != nil {
		return nil, err
	}

	return &auth.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Email:        kernel.Email(email),
		Role:         role,
		Status:       status,
		PasswordHash: hash,
	}, nil
}
