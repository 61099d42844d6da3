package wds

import (
	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/value"
)

// simbadIDMinLength is a prefix character plus a bare id.
const simbadIDMinLength = len(constants.SimbadIDPrefix) + constants.SystemIDLength

// DecodeSimbadID recovers the bare id from a Simbad-style WDS identifier
// such as J14396-6050C. Missing or short input yields NoData. The shape of
// the recovered id is not checked.
func DecodeSimbadID(v value.Value) value.Value {
	s, ok := v.Text()
	if !ok || len(s) < simbadIDMinLength {
		return value.NoData()
	}
	return value.Text(s[1:simbadIDMinLength])
}

// SystemIDFromSimbad is DecodeSimbadID for plain strings.
func SystemIDFromSimbad(s string) (SystemID, bool) {
	v := DecodeSimbadID(value.Text(s))
	id, ok := v.Text()
	return SystemID(id), ok
}

// EncodeSimbadID builds the canonical identifier for one component
// fragment of a system.
func EncodeSimbadID(id SystemID, fragment string) string {
	return constants.SimbadIDPrefix + string(id) + fragment
}
