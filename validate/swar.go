package validate

import "github.com/hexaurl/hexaurl-go/internal/common"

const caseBits = 0x2020202020202020

// checkWord classifies 8 input bytes at once. ok reports whether
// every byte is alphanumeric or an admitted delimiter; hasHyphen and
// hasUnderscore report per-word delimiter presence so the caller can
// skip the placement pass when no delimiter occurred anywhere.
//
// All range tests are plain integer arithmetic on one word, no
// vector intrinsics. Any byte >= 0x80 fails immediately, which also
// keeps the lane masks exact: with ASCII lanes no range-test sum can
// carry across a lane boundary.
func checkWord(w uint64, allowHyphen, allowUnderscore bool) (ok, hasHyphen, hasUnderscore bool) {
	if w&common.Highs != 0 {
		return false, false, false
	}

	// OR-ing the case bit folds 'A'..'Z' onto 'a'..'z' without
	// disturbing digits or delimiters for the letter range test.
	lower := w | caseBits
	letters := common.GEMask(lower, 'a') &^ common.GEMask(lower, 'z'+1)
	digits := common.GEMask(w, '0') &^ common.GEMask(w, '9'+1)
	valid := letters | digits

	if allowHyphen {
		m := common.EqMask(w, '-')
		valid |= m
		hasHyphen = m != 0
	}
	if allowUnderscore {
		m := common.EqMask(w, '_')
		valid |= m
		hasUnderscore = m != 0
	}

	ok = valid == common.Highs
	return ok, hasHyphen, hasUnderscore
}
