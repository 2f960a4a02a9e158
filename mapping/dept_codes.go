// Package mapping holds the static supply-room to department-code reference
// table and derives new assignment values from a requested action. The table
// is built once at startup and never mutated afterwards.
package mapping

import (
	"database/sql"
	"fmt"
)

// Action is a recognized update verb for the room assignment workflow
type Action string

const (
	ActionClose      Action = "close"
	ActionOpen       Action = "open"
	ActionUpdate     Action = "update"
	ActionSetNull    Action = "setNull"
	ActionSetDefault Action = "setDefault"
)

// ParseAction normalizes a wire-level action verb. The legacy front end sends
// Vietnamese verbs for close/open; both spellings are accepted.
func ParseAction(s string) (Action, error) {
	switch s {
	case "close", "dong":
		return ActionClose, nil
	case "open", "mo":
		return ActionOpen, nil
	case "update":
		return ActionUpdate, nil
	case "setNull":
		return ActionSetNull, nil
	case "setDefault":
		return ActionSetDefault, nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// EventLabel returns the short human label written to the audit log
func (a Action) EventLabel() string {
	switch a {
	case ActionClose:
		return "Close"
	case ActionOpen:
		return "Open"
	default:
		return "Update"
	}
}

// DeptCodes is the read-only room-id to department-code reference table
type DeptCodes struct {
	byRoom map[string]string
	shared map[string]struct{}

	// DefaultCode is used when a room has no entry in the table
	DefaultCode string
	// SharedCode is assigned to allow-listed rooms on the open action
	SharedCode string
}

// CodeFor returns the mapped department code for a room, or the default code
// when the room has no entry. A miss is never an error.
func (t *DeptCodes) CodeFor(roomID string) string {
	if code, ok := t.byRoom[roomID]; ok {
		return code
	}
	return t.DefaultCode
}

// IsShared reports whether a room is eligible for the open action
func (t *DeptCodes) IsShared(roomID string) bool {
	_, ok := t.shared[roomID]
	return ok
}

// Derive computes the new department code for a room given an action.
// clientCode is only consulted for ActionUpdate and is taken verbatim.
func (t *DeptCodes) Derive(action Action, roomID, clientCode string) (sql.NullString, error) {
	switch action {
	case ActionClose, ActionSetDefault:
		return sql.NullString{String: t.CodeFor(roomID), Valid: true}, nil
	case ActionOpen:
		if t.IsShared(roomID) {
			return sql.NullString{String: t.SharedCode, Valid: true}, nil
		}
		return sql.NullString{}, nil
	case ActionUpdate:
		return sql.NullString{String: clientCode, Valid: true}, nil
	case ActionSetNull:
		return sql.NullString{}, nil
	}
	return sql.NullString{}, fmt.Errorf("unknown action %q", action)
}

// DefaultDeptCodes builds the reference table used in production
func DefaultDeptCodes() *DeptCodes {
	t := &DeptCodes{
		byRoom: map[string]string{
			"1": "001", "2": "007", "3": "008", "5": "014", "6": "002",
			"7": "109", "8": "999", "9": "111", "10": "105", "11": "006",
			"12": "112", "16": "152", "17": "999", "22": "002", "23": "017",
			"26": "010", "27": "013", "28": "063", "29": "018", "30": "019",
			"31": "021", "32": "020", "33": "003", "35": "016", "40": "034",
			"41": "034", "43": "024", "45": "027", "47": "031", "48": "032",
			"49": "033", "51": "057", "55": "022", "56": "023", "57": "041",
			"59": "055", "60": "009", "61": "038", "62": "015", "63": "052",
			"65": "054", "66": "130", "67": "040", "69": "061", "70": "058",
			"71": "059", "72": "060", "73": "062", "74": "026", "75": "064",
			"78": "028", "84": "075", "87": "067", "88": "076", "89": "093",
			"90": "078", "91": "045", "92": "080", "93": "088", "94": "089",
			"95": "090", "96": "091", "97": "092", "98": "104", "99": "057",
			"100": "105", "104": "156", "105": "149", "106": "114",
			"107": "111", "108": "077", "112": "118", "113": "006",
			"114": "112", "115": "045", "116": "074", "117": "037",
			"118": "128", "119": "108", "120": "093", "121": "094",
			"122": "136", "130": "184", "131": "148", "132": "117",
			"133": "150", "134": "151", "135": "152", "136": "154",
			"137": "153", "141": "156", "142": "157", "143": "079",
			"144": "169", "145": "170", "146": "112", "148": "172",
			"149": "173", "150": "104", "152": "155", "154": "176",
			"155": "177", "156": "006", "157": "112", "158": "204",
			"159": "006", "160": "138", "162": "212", "163": "203",
			"164": "006", "165": "017", "166": "234", "167": "233",
			"168": "211", "169": "006", "171": "270", "172": "271",
			"173": "267", "174": "273", "175": "267", "176": "267",
			"177": "267", "178": "279",
		},
		shared:      make(map[string]struct{}),
		DefaultCode: "000",
		SharedCode:  "056",
	}

	// Rooms shared between departments, eligible for the open action
	for _, id := range []string{
		"11", "113", "17", "8", "91", "84", "88", "43", "106", "142",
		"109", "108", "148", "90", "105", "9", "107", "23", "104", "59",
		"135", "10", "112", "63", "89",
	} {
		t.shared[id] = struct{}{}
	}

	return t
}
