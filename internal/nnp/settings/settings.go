package settings

// Persisted plugin state. The profile list and the backup slot live here
// exclusively; the snapshot bytes themselves stay on disk and are referenced
// by filename only.

// Profile is a named snapshot of the Notebook Navigator settings file.
type Profile struct {
	// ID is generated once at creation from a slug of the initial name and
	// never changes afterwards, so commands and backup provenance stay stable
	// across renames.
	ID       string `json:"id"`
	Name     string `json:"name"`
	Filename string `json:"filename"`
	// CreatedAt and UpdatedAt are epoch milliseconds. UpdatedAt advances on
	// update, rename and activation.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Backup describes the single pre-activation backup slot. At most one exists;
// each activation replaces it.
type Backup struct {
	CreatedAt int64 `json:"createdAt"`
	// Source fields identify the profile whose activation triggered the
	// capture. Both are null when no profile was involved.
	SourceProfileID   *string `json:"sourceProfileId"`
	SourceProfileName *string `json:"sourceProfileName"`
}

// Settings is the full persisted document.
type Settings struct {
	ProfileDirectory string    `json:"profileDirectory"`
	Profiles         []Profile `json:"profiles"`
	Backup           *Backup   `json:"backup"`
}

// FindProfile returns the profile with the given id, or nil.
func (s *Settings) FindProfile(id string) *Profile {
	for i := range s.Profiles {
		if s.Profiles[i].ID == id {
			return &s.Profiles[i]
		}
	}
	return nil
}

// RemoveProfile deletes the profile with the given id from the list and
// reports whether it was present.
func (s *Settings) RemoveProfile(id string) bool {
	for i := range s.Profiles {
		if s.Profiles[i].ID == id {
			s.Profiles = append(s.Profiles[:i], s.Profiles[i+1:]...)
			return true
		}
	}
	return false
}
