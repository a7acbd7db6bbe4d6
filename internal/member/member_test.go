package member

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVotesInRotation(t *testing.T) {
	roster := BuiltinRoster()
	byID := make(map[string]Member, len(roster))
	for _, m := range roster {
		byID[m.ID] = m
	}

	// 理事会成员常年有票
	assert.True(t, byID["powell"].VotesIn(2024))
	assert.True(t, byID["powell"].VotesIn(2025))
	assert.True(t, byID["bowman"].VotesIn(2026))

	// 纽约联储主席常年有票
	assert.True(t, byID["williams"].VotesIn(2024))
	assert.True(t, byID["williams"].VotesIn(2025))

	// 轮换席位只在指定年份有票
	assert.True(t, byID["goolsbee"].VotesIn(2024))
	assert.False(t, byID["goolsbee"].VotesIn(2025))
	assert.True(t, byID["hammack"].VotesIn(2025))
	assert.False(t, byID["hammack"].VotesIn(2024))
}

func TestEligibleCountAndOrder(t *testing.T) {
	r, err := NewRegistry("")
	require.NoError(t, err)

	for _, year := range []int{2024, 2025, 2026} {
		eligible := r.Eligible(year)
		// 7 governors + NY + 4 rotating seats
		assert.Len(t, eligible, 12, "year %d", year)
		assert.Equal(t, "powell", eligible[0].ID)
	}

	e2025 := r.Eligible(2025)
	ids := make([]string, 0, len(e2025))
	for _, m := range e2025 {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, "hammack")
	assert.Contains(t, ids, "musalem")
	assert.NotContains(t, ids, "goolsbee")
	assert.NotContains(t, ids, "daly")
}

func TestLookup(t *testing.T) {
	r, err := NewRegistry("")
	require.NoError(t, err)

	m, ok := r.Lookup("powell")
	require.True(t, ok)
	assert.Equal(t, RoleChair, m.Role)

	m, ok = r.Lookup("Jerome H. Powell")
	require.True(t, ok)
	assert.Equal(t, "powell", m.ID)

	m, ok = r.Lookup("Waller")
	require.True(t, ok)
	assert.Equal(t, "waller", m.ID)

	_, ok = r.Lookup("nobody")
	assert.False(t, ok)
}

func TestRegistryOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	body := `
members:
  - id: powell
    name: Jerome H. Powell
    role: Chair
    bank: Board of Governors
    stance: hawk
    style: pragmatic
  - id: custom
    name: Custom Member
    role: Governor
    bank: Board of Governors
    stance: dove
    style: direct
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	r, err := NewRegistry(path)
	require.NoError(t, err)

	m, ok := r.Lookup("powell")
	require.True(t, ok)
	assert.Equal(t, StanceHawk, m.Stance)

	m, ok = r.Lookup("custom")
	require.True(t, ok)
	assert.True(t, m.VotesIn(2025))

	assert.Len(t, r.All(), len(BuiltinRoster())+1)
}

func TestRegistryReplaceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	body := `
replace: true
members:
  - id: solo
    name: Solo Voter
    role: Chair
    bank: Board of Governors
    stance: neutral
    style: measured
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	r, err := NewRegistry(path)
	require.NoError(t, err)
	assert.Len(t, r.All(), 1)
	assert.Len(t, r.Eligible(2030), 1)
}

func TestRegistryRejectsInvalidStance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("members:\n  - id: x\n    stance: wild\n"), 0o644))

	_, err := NewRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid stance")
}
