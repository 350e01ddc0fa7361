/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-010
 * CONTEXT:   Maps (entity kind, user, period) requests onto local/network FilePaths
 * INPUT:     FileKind, owning UserIdentity (zero value for non-owned files like the
 *            users directory), and Params for the period
 * OUTPUT:    Deterministic FilePath values of the requested StoreKind
 * BUSINESS:  Every component in the system reaches a file exclusively through this
 *            resolver - getting a path wrong here corrupts every downstream consumer
 * CHANGE:    Initial implementation.
 * RISK:      High - Central addressing scheme every other component depends on
 */

package pathresolver

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/worktime-tracker/system/internal/domain"
)

// Resolver translates (kind, user, params) into deterministic FilePaths
// under either the local root or the network root, and owns the per-path
// lock registry shared by every caller.
type Resolver struct {
	localRoot   string
	networkRoot string
	backupDir   string // relative to each root, e.g. "backups"
	locks       *lockRegistry
	now         func() time.Time
}

// Config is the construction-time configuration for a Resolver.
type Config struct {
	LocalRoot   string
	NetworkRoot string
	BackupDir   string // defaults to "backups" if empty
}

// New builds a Resolver. The network root is normalized to UNC form
// (spec section 4.1) regardless of how it was typed into configuration.
func New(cfg Config) *Resolver {
	backupDir := cfg.BackupDir
	if backupDir == "" {
		backupDir = "backups"
	}
	return &Resolver{
		localRoot:   filepath.Clean(cfg.LocalRoot),
		networkRoot: normalizeNetworkRoot(cfg.NetworkRoot),
		backupDir:   backupDir,
		locks:       &lockRegistry{},
		now:         time.Now,
	}
}

// LockFor returns the shared lock for path.Path, idempotently.
func (r *Resolver) LockFor(path domain.FilePath) *sync.RWMutex {
	return r.locks.lockFor(path.Path)
}

func (r *Resolver) relative(kind domain.FileKind, owner domain.UserIdentity, p Params) (string, error) {
	switch kind {
	case domain.FileKindStatus:
		return filepath.Join("status", fmt.Sprintf("%s_%d.flag", owner.Username, owner.UserID)), nil
	case domain.FileKindSession:
		return filepath.Join(owner.Username, fmt.Sprintf("session_%s_%d.json", owner.Username, owner.UserID)), nil
	case domain.FileKindWorktime:
		return filepath.Join(owner.Username, "worktime",
			fmt.Sprintf("worktime_%s_%d_%02d.json", owner.Username, p.Year, p.Month)), nil
	case domain.FileKindRegister:
		return filepath.Join(owner.Username, "register",
			fmt.Sprintf("register_%s_%d_%d_%02d.json", owner.Username, owner.UserID, p.Year, p.Month)), nil
	case domain.FileKindCheckRegister:
		return filepath.Join(owner.Username, "check_register",
			fmt.Sprintf("check_register_%s_%d_%d_%02d.json", owner.Username, owner.UserID, p.Year, p.Month)), nil
	case domain.FileKindTimeOff:
		return filepath.Join(owner.Username, "timeoff",
			fmt.Sprintf("timeoff_%s_%d_%d.json", owner.Username, owner.UserID, p.Year)), nil
	case domain.FileKindUsers:
		return filepath.Join("users", fmt.Sprintf("users_%s_%d.json", owner.Username, owner.UserID)), nil
	case domain.FileKindLog:
		if p.Version == "" {
			return "", domain.WrapProgrammer("log path requires a version")
		}
		return filepath.Join("logs", fmt.Sprintf("%s_%s.log", owner.Username, p.Version)), nil
	default:
		return "", domain.WrapProgrammer("unknown file kind")
	}
}

// ResolveLocal builds the LOCAL FilePath for (kind, owner, params).
func (r *Resolver) ResolveLocal(kind domain.FileKind, owner domain.UserIdentity, p Params) (domain.FilePath, error) {
	if kind == domain.FileKindLog {
		return domain.FilePath{}, domain.WrapProgrammer("log files have no local path")
	}
	pr, err := p.resolved(r.now)
	if err != nil {
		return domain.FilePath{}, err
	}
	rel, err := r.relative(kind, owner, pr)
	if err != nil {
		return domain.FilePath{}, err
	}
	return domain.FilePath{Path: filepath.Join(r.localRoot, rel), Kind: domain.LOCAL, Owner: owner}, nil
}

// ResolveNetwork builds the NETWORK FilePath for (kind, owner, params).
// FileKindLog is network-only per spec section 6; ResolveLocal rejects
// it, so no LOCAL counterpart is ever constructed for it.
func (r *Resolver) ResolveNetwork(kind domain.FileKind, owner domain.UserIdentity, p Params) (domain.FilePath, error) {
	pr, err := p.resolved(r.now)
	if err != nil {
		return domain.FilePath{}, err
	}
	rel, err := r.relative(kind, owner, pr)
	if err != nil {
		return domain.FilePath{}, err
	}
	return domain.FilePath{Path: joinUNC(r.networkRoot, rel), Kind: domain.NETWORK, Owner: owner}, nil
}

// ToNetwork relativizes a LOCAL path against the local root and rebuilds
// it under the network root. It fails if local is not under localRoot.
func (r *Resolver) ToNetwork(local domain.FilePath) (domain.FilePath, error) {
	if local.Kind != domain.LOCAL {
		return domain.FilePath{}, domain.WrapProgrammer("ToNetwork requires a LOCAL path")
	}
	rel, err := filepath.Rel(r.localRoot, local.Path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return domain.FilePath{}, domain.WrapProgrammer("path is not under the local root: " + local.Path)
	}
	return domain.FilePath{Path: joinUNC(r.networkRoot, rel), Kind: domain.NETWORK, Owner: local.Owner}, nil
}

// ToLocal relativizes a NETWORK path against the network root and
// rebuilds it under the local root. It fails if network is not under
// networkRoot.
func (r *Resolver) ToLocal(network domain.FilePath) (domain.FilePath, error) {
	if network.Kind != domain.NETWORK {
		return domain.FilePath{}, domain.WrapProgrammer("ToLocal requires a NETWORK path")
	}
	rel, err := relUNC(r.networkRoot, network.Path)
	if err != nil {
		return domain.FilePath{}, domain.WrapProgrammer("path is not under the network root: " + network.Path)
	}
	return domain.FilePath{Path: filepath.Join(r.localRoot, rel), Kind: domain.LOCAL, Owner: network.Owner}, nil
}

// BackupDirFor returns the tiered backup directory for a user and
// criticality: <networkRoot>/<backupPath>/<username>/<tier>/.
func (r *Resolver) BackupDirFor(owner domain.UserIdentity, tier domain.Criticality) string {
	return joinUNC(r.networkRoot, filepath.Join(r.backupDir, owner.Username, tierName(tier)))
}

// NetworkRoot exposes the normalized network root for the liveness monitor.
func (r *Resolver) NetworkRoot() string {
	return r.networkRoot
}

// LocalRoot exposes the local root.
func (r *Resolver) LocalRoot() string {
	return r.localRoot
}

func tierName(tier domain.Criticality) string {
	switch tier {
	case domain.CriticalityLow:
		return "low"
	case domain.CriticalityMedium:
		return "medium"
	default:
		return "high"
	}
}

// joinUNC joins a UNC root with a relative path without letting
// filepath.Join collapse the root's double leading separator.
func joinUNC(root, rel string) string {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "/")
	if rel == "" {
		return root
	}
	return strings.TrimSuffix(root, "/") + "/" + rel
}

// relUNC relativizes path against a UNC root without filepath.Rel's
// drive-letter assumptions (which don't apply to "//server/share" paths
// on non-Windows build hosts).
func relUNC(root, path string) (string, error) {
	root = strings.TrimSuffix(root, "/")
	if !strings.HasPrefix(path, root+"/") && path != root {
		return "", fmt.Errorf("not under root")
	}
	return strings.TrimPrefix(strings.TrimPrefix(path, root), "/"), nil
}
