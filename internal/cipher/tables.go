package cipher

// Historical rotor wirings, notch sets, and turnover sets (§6). Rotors are
// selected by the caller with 1-based indices 1..8, matching the table in
// the spec; index 0 of rotorWirings is unused padding so a 1-based rotor
// choice can be used directly as an array index.
var rotorWirings = [9]string{
	"", // unused
	"EKMFLGDQVZNTOWYHXUSPAIBRCJ", // I
	"AJDKSIRUXBLHWTMCQGZNPYFVOE", // II
	"BDFHJLCPRTXVZNYEIWGAKMUSQO", // III
	"ESOVPZJAYQUIRHXLNFTGKDCMWB", // IV
	"VZBRGITYUPSDNHLXAWMJQOFECK", // V
	"JPGVOUMFYQBENHZRDKASXLICTW", // VI
	"NZJHGRCXMYSWBOUFAIVLPEKQDT", // VII
	"FKQHTLXOCBJSPDZRAMEWNIUYGV", // VIII
}

var rotorNotches = [9]string{
	"",
	"Q", "E", "V", "J", "Z", "ZM", "ZM", "ZM",
}

var rotorTurnovers = [9]string{
	"",
	"R", "F", "W", "K", "A", "AN", "AN", "AN",
}

// Reflector wirings (§6), selected by caller index 0..2.
var reflectorWirings = [3]string{
	"EJMZALYXVBWFCRQUONTSPIKHGD", // A
	"YRUHQSLDPXNGOKMIEBFZCWVJAT", // B
	"FVPJIAOYEDRZXWGCTKUQSBNMHL", // C
}

// RotorCount is the number of historical rotor wirings available (1..8).
const RotorCount = 8

// ReflectorCount is the number of historical reflector wirings available (0..2).
const ReflectorCount = 3
