package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/settings"
)

// NewRootCommand constructs the root cobra command for nnp. The dynamic
// activate-profile-<id> commands are attached separately by the registrar.
func NewRootCommand(mgr *nnp.Manager, prompter Prompter, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nnp",
		Short: "Notebook Navigator profile switcher",
		Long:  "nnp captures named snapshots of the Notebook Navigator settings and switches between them safely.",
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.AddCommand(newListCommand(mgr, stdout))
	cmd.AddCommand(newCreateCommand(mgr, prompter, stdout))
	cmd.AddCommand(newActivateCommand(mgr, prompter, stdout))
	cmd.AddCommand(newUpdateCommand(mgr, prompter, stdout))
	cmd.AddCommand(newRenameCommand(mgr, prompter, stdout))
	cmd.AddCommand(newDeleteCommand(mgr, prompter, stdout))
	cmd.AddCommand(newRevertCommand(mgr, prompter, stdout))

	return cmd
}

func newListCommand(mgr *nnp.Manager, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := mgr.Profiles()
			if len(profiles) == 0 {
				fmt.Fprintln(stdout, "No profiles found. Use 'nnp create' to capture one.")
			}
			for _, p := range profiles {
				fmt.Fprintf(stdout, "[%s] %s (updated %s)\n", p.Name, p.Filename, formatMillis(p.UpdatedAt))
			}
			if backup := mgr.Backup(); backup != nil {
				source := "unknown source"
				if backup.SourceProfileName != nil {
					source = "before activating " + *backup.SourceProfileName
				}
				fmt.Fprintf(stdout, "Backup from %s (%s)\n", formatMillis(backup.CreatedAt), source)
			}
			return nil
		},
	}
}

func newCreateCommand(mgr *nnp.Manager, prompter Prompter, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a profile from the current Notebook Navigator settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			} else {
				entered, err := prompter.Prompt("Enter a name for the new profile")
				if err != nil {
					return err
				}
				name = entered
			}
			profile, err := mgr.Create(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Created profile: %s (%s)\n", profile.Name, profile.Filename)
			return nil
		},
	}
}

func newActivateCommand(mgr *nnp.Manager, prompter Prompter, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "activate [profile]",
		Short: "Activate a profile, backing up the current settings first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := chooseProfile(mgr, prompter, args, "Select profile to activate")
			if err != nil {
				return err
			}
			if err := mgr.Activate(profile.ID); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Activated profile: %s\n", profile.Name)
			return nil
		},
	}
}

func newUpdateCommand(mgr *nnp.Manager, prompter Prompter, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "update [profile]",
		Short: "Overwrite a profile with the current Notebook Navigator settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := chooseProfile(mgr, prompter, args, "Select profile to update")
			if err != nil {
				return err
			}
			if err := mgr.Update(profile.ID); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Updated profile: %s\n", profile.Name)
			return nil
		},
	}
}

func newRenameCommand(mgr *nnp.Manager, prompter Prompter, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [profile] [new-name]",
		Short: "Rename a profile",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := chooseProfile(mgr, prompter, args, "Select profile to rename")
			if err != nil {
				return err
			}
			newName := ""
			if len(args) > 1 {
				newName = args[1]
			} else {
				entered, err := prompter.Prompt(fmt.Sprintf("Enter a new name for %q", profile.Name))
				if err != nil {
					return err
				}
				newName = entered
			}
			renamed, err := mgr.Rename(profile.ID, newName)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Renamed profile: %s -> %s (%s)\n", profile.Name, renamed.Name, renamed.Filename)
			return nil
		},
	}
}

func newDeleteCommand(mgr *nnp.Manager, prompter Prompter, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [profile]",
		Short: "Delete a profile and its snapshot file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := chooseProfile(mgr, prompter, args, "Select profile to delete")
			if err != nil {
				return err
			}
			confirm, err := prompter.Confirm(fmt.Sprintf("Delete profile %q and its file? (y/N)", profile.Name), false)
			if err != nil {
				return err
			}
			if !confirm {
				fmt.Fprintln(stdout, "Aborted.")
				return nil
			}
			if err := mgr.Delete(profile.ID); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Deleted profile: %s\n", profile.Name)
			return nil
		},
	}
}

func newRevertCommand(mgr *nnp.Manager, prompter Prompter, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "revert",
		Short: "Restore the Notebook Navigator settings from the last backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := prompter.Confirm("Revert to the settings captured before the last activation? (y/N)", false)
			if err != nil {
				return err
			}
			if !confirm {
				fmt.Fprintln(stdout, "Aborted.")
				return nil
			}
			if err := mgr.RevertBackup(); err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Reverted to the backed-up settings.")
			return nil
		},
	}
}

// chooseProfile resolves args[0] to a profile by id or name, or falls back to
// an interactive selection over all profiles.
func chooseProfile(mgr *nnp.Manager, prompter Prompter, args []string, label string) (settings.Profile, error) {
	profiles := mgr.Profiles()
	if len(args) > 0 {
		ref := strings.TrimSpace(args[0])
		for _, p := range profiles {
			if p.ID == ref || strings.EqualFold(p.Name, ref) {
				return p, nil
			}
		}
		return settings.Profile{}, fmt.Errorf("profile '%s' not found", ref)
	}

	if len(profiles) == 0 {
		return settings.Profile{}, fmt.Errorf("no profiles available; use 'nnp create' first")
	}
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	idx, _, err := prompter.Select(label, names)
	if err != nil {
		return settings.Profile{}, err
	}
	return profiles[idx], nil
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
