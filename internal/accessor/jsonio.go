/**
 * CONTEXT:   JSON read/write plumbing shared by every accessor strategy
 * INPUT:     A pathresolver.Resolver-built domain.FilePath
 * OUTPUT:    Decoded entity slices, or the marshaled bytes a txn.Manager write needs
 * BUSINESS:  A missing file decodes to an empty slice/zero value (spec section 6's
 *            "emergency empty" fallback), never an error - only a genuinely corrupt
 *            (too-small or malformed) file is an integrity error
 * CHANGE:    Initial implementation.
 * RISK:      Medium - every accessor read goes through here
 */

package accessor

import (
	"encoding/json"
	"os"

	"github.com/worktime-tracker/system/internal/domain"
)

// minValidFileBytes matches spec section 6's "file integrity check
// treats files < 3 bytes as invalid".
const minValidFileBytes = 3

func readJSON[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, nil
		}
		return zero, domain.WrapTransient("read "+path, err)
	}
	if len(data) < minValidFileBytes {
		return zero, domain.WrapIntegrity("file too small to be valid: " + path)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, domain.WrapIntegrity("malformed JSON in " + path + ": " + err.Error())
	}
	return out, nil
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, domain.WrapProgrammer("marshal failed: " + err.Error())
	}
	return data, nil
}
