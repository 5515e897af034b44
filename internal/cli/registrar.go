package cli

import (
	"github.com/spf13/cobra"

	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp"
)

// CobraRegistrar implements nnp.Registrar by attaching one subcommand per
// profile to the root command, so every profile is directly addressable as
// `nnp activate-profile-<id>`.
type CobraRegistrar struct {
	root *cobra.Command
}

// NewRegistrar creates a CobraRegistrar bound to the root command.
func NewRegistrar(root *cobra.Command) *CobraRegistrar {
	return &CobraRegistrar{root: root}
}

func (r *CobraRegistrar) Register(id, name string, action func() error) (nnp.Handle, error) {
	cmd := &cobra.Command{
		Use:   id,
		Short: name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return action()
		},
	}
	r.root.AddCommand(cmd)
	return &cobraHandle{root: r.root, cmd: cmd}, nil
}

type cobraHandle struct {
	root *cobra.Command
	cmd  *cobra.Command
}

func (h *cobraHandle) Unregister() {
	h.root.RemoveCommand(h.cmd)
}
