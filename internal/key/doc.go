// Package key provides the key event types shared by the dispatch arbiter
// and its delegates.
//
// An Event carries the raw fields of a platform key notification: virtual-key
// code, scan code, action, character code point, and the extended and
// was-down state flags. The arbiter never interprets these fields beyond
// equality; Fingerprint packs them into a comparable tuple used to match a
// synthesized event against its re-entry.
package key
