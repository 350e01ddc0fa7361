/**
 * CONTEXT:   File-backed persistence for the per-user current-day domain.Session (spec
 *            section 4.7), the one entity the session state machine operates on but
 *            never itself reads or writes
 * INPUT:     A domain.UserIdentity and, for writes, the domain.Session to persist
 * OUTPUT:    The current session (or nil if none exists yet) local-first, written
 *            through the same txn.Manager every other write path uses
 * CHANGE:    Initial implementation, grounded on the teacher's simple_persistence.go
 *            JSON-file-per-entity idiom, routed through the path resolver and
 *            transaction manager instead of ad-hoc os.WriteFile calls.
 * RISK:      Medium - a lost or corrupted session file strands a user mid-day
 */

package sessionstore

import (
	"encoding/json"
	"os"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
	"github.com/worktime-tracker/system/internal/txn"
)

const minValidFileBytes = 3

// Store reads and writes the local, per-user session file.
type Store struct {
	resolver *pathresolver.Resolver
}

// New builds a Store bound to resolver.
func New(resolver *pathresolver.Resolver) *Store {
	return &Store{resolver: resolver}
}

// Load returns the current session for owner, or nil if none has ever
// been written.
func (s *Store) Load(owner domain.UserIdentity) (*domain.Session, error) {
	path, err := s.resolver.ResolveLocal(domain.FileKindSession, owner, pathresolver.Params{})
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.WrapTransient("read session file", err)
	}
	if len(data) < minValidFileBytes {
		return nil, domain.WrapIntegrity("session file too small to be valid: " + path.Path)
	}
	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, domain.WrapIntegrity("malformed session JSON: " + err.Error())
	}
	return &sess, nil
}

// Save persists sess as the current session for its owner, through the
// same transaction manager every other write in the system uses.
func (s *Store) Save(owner domain.UserIdentity, sess domain.Session) error {
	path, err := s.resolver.ResolveLocal(domain.FileKindSession, owner, pathresolver.Params{})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return domain.WrapProgrammer("marshal session: " + err.Error())
	}
	mgr := txn.Begin()
	if err := mgr.AddWrite(path, data, domain.FileKindSession); err != nil {
		return err
	}
	res, err := mgr.Commit()
	if err != nil {
		return err
	}
	if !res.Committed {
		return domain.WrapTransient("session write failed", nil)
	}
	return nil
}

// Archive persists stale as a dated archive file alongside the current
// session file, implementing the sessionfsm.ArchiveFunc hook's contract:
// a session belonging to an earlier calendar day is preserved, not
// overwritten, before StartDay builds a fresh one.
func (s *Store) Archive(stale domain.Session) error {
	owner := domain.UserIdentity{Username: stale.Username, UserID: stale.UserID}
	path, err := s.resolver.ResolveLocal(domain.FileKindSession, owner, pathresolver.Params{})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(stale, "", "  ")
	if err != nil {
		return domain.WrapProgrammer("marshal archived session: " + err.Error())
	}
	archivePath := domain.FilePath{
		Path:  path.Path + "." + stale.Day.Format("2006-01-02") + ".archive.json",
		Kind:  domain.LOCAL,
		Owner: owner,
	}
	mgr := txn.Begin()
	if err := mgr.AddWrite(archivePath, data, domain.FileKindSession); err != nil {
		return err
	}
	res, err := mgr.Commit()
	if err != nil {
		return err
	}
	if !res.Committed {
		return domain.WrapTransient("write session archive", nil)
	}
	return nil
}
