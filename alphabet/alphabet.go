// Package alphabet contains the letter, rack, bag, and tile-value
// primitives shared by the board and move-generation packages.
package alphabet

// NumLetters is the number of distinct letters, not counting the blank.
const NumLetters = 26

const (
	// NumTotalLetters includes the blank.
	NumTotalLetters = 27
	// BlankPosition is the index of the blank in a rack's letter array.
	BlankPosition = 26
)

// EmptySquareMarker is the letter value of a square with no tile on it.
const EmptySquareMarker byte = '.'

// BlankCharacter is the rune that represents an unassigned blank on a rack.
const BlankCharacter = '?'

// A tile letter is a single byte. Uppercase 'A'..'Z' is a natural tile;
// lowercase 'a'..'z' is a blank that has been assigned that letter.

// Idx converts a letter to its 0-25 alphabet index. Blanks are indexed
// by their assigned letter.
func Idx(letter byte) int {
	return int(ToUpper(letter) - 'A')
}

// IsBlank returns true if the tile is a blank (assigned, so lowercase).
func IsBlank(letter byte) bool {
	return letter >= 'a' && letter <= 'z'
}

// IsUpper returns true for a natural (non-blank) tile letter.
func IsUpper(letter byte) bool {
	return letter >= 'A' && letter <= 'Z'
}

// ToUpper maps an assigned blank back to the plain letter it stands for.
func ToUpper(letter byte) byte {
	if IsBlank(letter) {
		return letter - 'a' + 'A'
	}
	return letter
}

// ToLower marks a letter as carried by a blank tile.
func ToLower(letter byte) byte {
	if IsUpper(letter) {
		return letter - 'A' + 'a'
	}
	return letter
}
