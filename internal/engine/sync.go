package engine

// SyncMemberships republishes the user's current snapshot (name,
// plant, habits) into their own member slot of every party, matched by
// friend code. Other members pass through untouched.
//
// It runs unconditionally on every state write; running it twice with
// the same snapshot is a no-op on the second run.
func SyncMemberships(s *UserState) {
	if len(s.Parties) == 0 {
		return
	}
	me := s.Snapshot()
	for pi := range s.Parties {
		members := s.Parties[pi].Members
		for mi := range members {
			if members[mi].FriendCode == s.FriendCode {
				members[mi] = me
			}
		}
	}
}
