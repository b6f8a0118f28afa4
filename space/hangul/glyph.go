package hangul

// Medial vowel indices.
const (
	JungA   = 0  // ㅏ
	JungAE  = 1  // ㅐ
	JungYA  = 2  // ㅑ
	JungYAE = 3  // ㅒ
	JungEO  = 4  // ㅓ
	JungE   = 5  // ㅔ
	JungYEO = 6  // ㅕ
	JungYE  = 7  // ㅖ
	JungO   = 8  // ㅗ
	JungWA  = 9  // ㅘ
	JungWAE = 10 // ㅙ
	JungOE  = 11 // ㅚ
	JungYO  = 12 // ㅛ
	JungU   = 13 // ㅜ
	JungWO  = 14 // ㅝ
	JungWE  = 15 // ㅞ
	JungWI  = 16 // ㅟ
	JungYU  = 17 // ㅠ
	JungEU  = 18 // ㅡ
	JungUI  = 19 // ㅢ
	JungI   = 20 // ㅣ
)

// GlyphMap rewrites a medial index. Indices missing from the map are left as
// they are.
type GlyphMap map[int]int

// Lookup returns the image of jung and whether the map rewrites it.
func (m GlyphMap) Lookup(jung int) (int, bool) {
	v, ok := m[jung]
	return v, ok
}

// InvertH mirrors left and right.
var InvertH = GlyphMap{
	JungA:   JungEO,
	JungEO:  JungA,
	JungYA:  JungYEO,
	JungYEO: JungYA,
	JungAE:  JungE,
	JungE:   JungAE,
	JungYAE: JungYE,
	JungYE:  JungYAE,
}

// InvertV mirrors up and down.
var InvertV = GlyphMap{
	JungO:  JungU,
	JungU:  JungO,
	JungYO: JungYU,
	JungYU: JungYO,
}

// RotateCW turns a direction a quarter turn clockwise: right becomes down,
// down becomes left, and so on. The two reflectors swap axes.
var RotateCW = GlyphMap{
	JungA:   JungU,
	JungU:   JungEO,
	JungEO:  JungO,
	JungO:   JungA,
	JungYA:  JungYU,
	JungYU:  JungYEO,
	JungYEO: JungYO,
	JungYO:  JungYA,
	JungEU:  JungI,
	JungI:   JungEU,
}

// RotateCCW is the inverse of RotateCW.
var RotateCCW = GlyphMap{
	JungU:   JungA,
	JungEO:  JungU,
	JungO:   JungEO,
	JungA:   JungO,
	JungYU:  JungYA,
	JungYEO: JungYU,
	JungYO:  JungYEO,
	JungYA:  JungYO,
	JungI:   JungEU,
	JungEU:  JungI,
}
