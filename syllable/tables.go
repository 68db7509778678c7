package syllable

import "github.com/phonolab/syllabify-go/phoneme"

// Licit syllable-medial onset clusters. The pair table drives onset
// maximization; the triple table is a strict extension of it: every triple's
// final two phonemes also form a licit pair, and the triple is only consulted
// once the pair has already matched.
var onsetPairs = map[[2]phoneme.Phoneme]bool{
	{"P", "R"}: true, {"T", "R"}: true, {"K", "R"}: true,
	{"B", "R"}: true, {"D", "R"}: true, {"G", "R"}: true,
	{"F", "R"}: true, {"TH", "R"}: true,
	{"P", "L"}: true, {"K", "L"}: true, {"B", "L"}: true,
	{"G", "L"}: true, {"F", "L"}: true, {"S", "L"}: true,
	{"K", "W"}: true, {"G", "W"}: true, {"S", "W"}: true,
	{"S", "P"}: true, {"S", "T"}: true, {"S", "K"}: true,
	{"HH", "Y"}: true, // "clerihew"
	{"R", "W"}:  true,
}

var onsetTriples = map[[3]phoneme.Phoneme]bool{
	{"S", "T", "R"}: true,
	{"S", "K", "L"}: true,
	{"T", "R", "W"}: true, // "octroi"
}
