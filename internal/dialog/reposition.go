package dialog

// RepositionForMatch implements §4.8's live-repositioning rule: after a
// match is found, if the cursor would sit behind the dialog (dialogTop..
// viewHeight), scroll so the cursor lands mid-area instead. matchRow is the
// match's row within the viewport's current display (0-based); viewHeight is
// the viewport's total row count; dialogTop is the first row the dialog
// occupies (rows >= dialogTop are covered). It returns the number of rows to
// scroll the viewport down (positive) so matchRow is no longer hidden, or 0
// if the match is already visible above the dialog.
func RepositionForMatch(matchRow, dialogTop, viewHeight int) int {
	if matchRow < dialogTop {
		return 0
	}
	editArea := dialogTop
	if editArea <= 0 {
		return 0
	}
	mid := editArea / 2
	shift := matchRow - mid
	if shift < 0 {
		shift = 0
	}
	maxShift := viewHeight - editArea
	if maxShift < 0 {
		maxShift = 0
	}
	if shift > maxShift {
		shift = maxShift
	}
	return shift
}
