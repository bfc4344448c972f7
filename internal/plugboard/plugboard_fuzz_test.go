package plugboard

import "testing"

// FuzzAddPair fuzzes AddPair to ensure it never panics on arbitrary indices
// and that every mapping it accepts stays an involution (§8.4).
func FuzzAddPair(f *testing.F) {
	f.Add(0, 25)
	f.Add(0, 0)
	f.Add(-1, 5)
	f.Add(30, 2)
	f.Add(5, 5)

	f.Fuzz(func(t *testing.T, i, j int) {
		m := Identity()
		m, err := m.AddPair(i, j)
		if err != nil {
			return
		}
		if !m.IsInvolution() {
			t.Fatalf("AddPair(%d, %d) accepted but result is not an involution", i, j)
		}
		if m[i] != j || m[j] != i {
			t.Fatalf("AddPair(%d, %d) accepted but m[%d]=%d m[%d]=%d", i, j, i, m[i], j, m[j])
		}
	})
}
