package toggle

// reconcile decides whether an externally supplied value must override the
// internal one. prevExternal is the last external value applied (nil when the
// switch has been uncontrolled so far).
//
// The comparison is strictly against the previous external value, not the
// internal value alone: an internal change from a user gesture leaves the
// external value untouched and must not be overridden by it echoing back.
func reconcile(prevExternal *bool, external, internal bool) bool {
	if prevExternal != nil && *prevExternal == external {
		return false
	}
	return external != internal
}
