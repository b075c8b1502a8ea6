package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func enrollCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enroll",
		Short: "Create the credential used to authenticate favorite changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass := o.wire.Config.Passphrase
			if pass == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			cred, fp, err := o.wire.Enrollment.Enroll(cmd.Context(), pass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enrolled device %s.\nFingerprint: %s\n", cred.DeviceID, fp)
			return nil
		},
	}
}

func unenrollCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unenroll",
		Short: "Remove the credential; favorites become read-only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.wire.Enrollment.Unenroll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Credential removed.")
			return nil
		},
	}
}

func fingerprintCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the credential fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass := o.wire.Config.Passphrase
			if pass == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			fp, err := o.wire.Enrollment.Fingerprint(pass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}
