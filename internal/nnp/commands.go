package nnp

import "fmt"

// commandIDPrefix prefixes the per-profile activate command ids. The suffix
// is the profile id, which is stable across renames.
const commandIDPrefix = "activate-profile-"

// Registrar registers named zero-argument actions with the host command
// system. The CLI backs this with dynamic cobra subcommands.
type Registrar interface {
	Register(id, name string, action func() error) (Handle, error)
}

// Handle represents a registered command that can later be removed.
type Handle interface {
	Unregister()
}

// CommandID returns the command id for activating the given profile.
func CommandID(profileID string) string {
	return commandIDPrefix + profileID
}

// rebuildCommands tears down every registered activate command and registers
// one per current profile. Rebuilding wholesale instead of diffing keeps
// stale commands for deleted or renamed profiles from lingering; registration
// is cheap and structural changes are rare.
func (m *Manager) rebuildCommands() error {
	if m.registrar == nil {
		return nil
	}
	for id, handle := range m.handles {
		handle.Unregister()
		delete(m.handles, id)
	}
	for _, p := range m.settings.Profiles {
		profileID := p.ID
		handle, err := m.registrar.Register(
			CommandID(profileID),
			fmt.Sprintf("Activate profile: %s", p.Name),
			func() error { return m.Activate(profileID) },
		)
		if err != nil {
			return fmt.Errorf("register command for profile %s: %w", profileID, err)
		}
		m.handles[profileID] = handle
	}
	return nil
}

// unregisterCommands removes every registered activate command.
func (m *Manager) unregisterCommands() {
	for id, handle := range m.handles {
		handle.Unregister()
		delete(m.handles, id)
	}
}
