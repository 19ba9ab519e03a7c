package stage

// NextOnShortlist returns the stage a user moves to when they shortlist a
// university, and whether that is an advancement. Shortlisting while still
// building the profile or discovering universities jumps straight to
// finalizing; later stages are left alone.
func NextOnShortlist(current string) (string, bool) {
	if current == StageBuildingProfile || current == StageDiscovering {
		return StageFinalizing, true
	}
	return current, false
}

// NextOnLock returns the stage a user moves to when they lock their final
// university choice. Stages never move backward here.
func NextOnLock(current string) (string, bool) {
	if current != StageApplications {
		return StageApplications, true
	}
	return current, false
}
