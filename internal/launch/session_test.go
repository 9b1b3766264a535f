package launch

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(WithRand(rand.New(rand.NewPCG(1, 2))))
	s.UpdateField(FieldName, "Photon")
	s.UpdateField(FieldSymbol, "pho")
	s.UpdateField(FieldSupply, "1,000,000")
	return s
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()

	assert.Equal(t, StepConfigure, s.Step())
	assert.False(t, s.Launched())
	assert.Equal(t, DefaultDraft(), s.Draft())
	assert.Equal(t, 9, s.Draft().Decimals)
	assert.True(t, s.Draft().FreezeAuthority)
	assert.True(t, s.Draft().MintAuthority)

	_, ok := s.Result()
	assert.False(t, ok)
}

func TestCanAdvance_Configure(t *testing.T) {
	tests := []struct {
		name   string
		draft  Draft
		expect bool
	}{
		{"complete", Draft{Name: "Photon", Symbol: "PHO", Supply: "100"}, true},
		{"empty name", Draft{Symbol: "PHO", Supply: "100"}, false},
		{"empty symbol", Draft{Name: "Photon", Supply: "100"}, false},
		{"empty supply", Draft{Name: "Photon", Symbol: "PHO"}, false},
		{"zero supply", Draft{Name: "Photon", Symbol: "PHO", Supply: "0"}, false},
		{"zeros supply", Draft{Name: "Photon", Symbol: "PHO", Supply: "0000"}, false},
		{"leading zeros", Draft{Name: "Photon", Symbol: "PHO", Supply: "0001"}, true},
		{"huge supply", Draft{Name: "Photon", Symbol: "PHO", Supply: "99999999999999999999999999"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(WithDraft(tt.draft))
			assert.Equal(t, tt.expect, CanAdvance(s))
			assert.Equal(t, tt.expect, s.CanAdvance())
		})
	}
}

func TestCanAdvance_ByStep(t *testing.T) {
	s := completeSession(t)
	require.True(t, s.Advance())
	assert.Equal(t, StepReview, s.Step())
	assert.True(t, CanAdvance(s))

	require.True(t, s.Advance())
	assert.Equal(t, StepLaunch, s.Step())
	assert.False(t, CanAdvance(s))
	assert.False(t, s.Advance())
	assert.Equal(t, StepLaunch, s.Step())
}

func TestAdvance_BlockedWhenIncomplete(t *testing.T) {
	s := NewSession()
	s.UpdateField(FieldName, "Photon")

	assert.False(t, s.Advance())
	assert.Equal(t, StepConfigure, s.Step())

	s.UpdateField(FieldSymbol, "PHO")
	s.UpdateField(FieldSupply, "abc")
	assert.False(t, s.Advance(), "supply with no digits is empty")
	assert.Equal(t, StepConfigure, s.Step())
}

func TestBack(t *testing.T) {
	s := completeSession(t)

	assert.False(t, s.Back(), "back at first step")
	assert.Equal(t, StepConfigure, s.Step())

	s.Advance()
	s.Advance()
	assert.True(t, s.Back())
	assert.Equal(t, StepReview, s.Step())
	assert.True(t, s.Back())
	assert.Equal(t, StepConfigure, s.Step())
}

func TestLaunch(t *testing.T) {
	t.Run("only at launch step", func(t *testing.T) {
		s := completeSession(t)
		_, ok := s.Launch()
		assert.False(t, ok)
		assert.False(t, s.Launched())

		s.Advance()
		_, ok = s.Launch()
		assert.False(t, ok)
		assert.False(t, s.Launched())
	})

	t.Run("idempotent", func(t *testing.T) {
		s := completeSession(t)
		s.Advance()
		s.Advance()

		first, ok := s.Launch()
		require.True(t, ok)
		assert.True(t, s.Launched())

		second, ok := s.Launch()
		require.True(t, ok)
		assert.True(t, s.Launched())
		assert.Equal(t, first, second)

		stored, ok := s.Result()
		require.True(t, ok)
		assert.Equal(t, first, stored)
	})

	t.Run("result contents", func(t *testing.T) {
		s := completeSession(t)
		s.Advance()
		s.Advance()

		res, ok := s.Launch()
		require.True(t, ok)
		assert.Equal(t, Lamports(2_700_000), res.Fee)
		assert.Equal(t, "0.0027", res.FeeSOL)
		assert.Equal(t, "Photon (PHO) • 9 dec • 1000000 supply", res.Preview)
		assert.Equal(t, s.Draft(), res.Draft)
		assert.Regexp(t, `^PHOPH[0-9a-z]{16}$`, res.Address)
	})

	t.Run("terminal state", func(t *testing.T) {
		s := completeSession(t)
		s.Advance()
		s.Advance()
		s.Launch()

		assert.False(t, s.Back())
		assert.Equal(t, StepLaunch, s.Step())

		s.UpdateField(FieldName, "Changed")
		assert.Equal(t, "Photon", s.Draft().Name)
		assert.True(t, s.Launched())
	})
}

func TestReset(t *testing.T) {
	s := completeSession(t)
	s.UpdateField(FieldDecimals, "2")
	s.UpdateField(FieldFreezeAuthority, "false")
	s.UpdateField(FieldMetadataURI, "https://example.com/meta.json")
	s.Advance()
	s.Advance()
	s.Launch()

	s.Reset()

	assert.Equal(t, StepConfigure, s.Step())
	assert.False(t, s.Launched())
	assert.Equal(t, DefaultDraft(), s.Draft())
	_, ok := s.Result()
	assert.False(t, ok)

	// A new launch after reset yields a fresh result.
	s.UpdateField(FieldName, "Second")
	s.UpdateField(FieldSymbol, "two")
	s.UpdateField(FieldSupply, "5")
	s.Advance()
	s.Advance()
	res, ok := s.Launch()
	require.True(t, ok)
	assert.Equal(t, "Second", res.Draft.Name)
}

func TestSetField(t *testing.T) {
	s := NewSession()

	require.NoError(t, s.SetField("symbol", "photon123456"))
	assert.Equal(t, "PHOTON12", s.Draft().Symbol)

	require.NoError(t, s.SetField("freeze_authority", "off"))
	assert.False(t, s.Draft().FreezeAuthority)

	err := s.SetField("owner", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestWithDraft_Normalizes(t *testing.T) {
	s := NewSession(WithDraft(Draft{Name: "A", Symbol: "abcdefghij", Supply: "1 000", Decimals: 7}))

	d := s.Draft()
	assert.Equal(t, "ABCDEFGH", d.Symbol)
	assert.Equal(t, "1000", d.Supply)
	assert.Equal(t, DefaultDecimals, d.Decimals)
}

func TestSnapshot(t *testing.T) {
	s := NewSession()
	v := s.Snapshot()

	assert.Equal(t, 1, v.StepNumber())
	assert.False(t, v.CanAdvance)
	assert.Equal(t, "Your Token (SYMB) • 9 dec • — supply", v.Preview)
	assert.Equal(t, "0.0027", v.FeeSOL())
	assert.Nil(t, v.Result)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "Configure", StepConfigure.String())
	assert.Equal(t, "Review", StepReview.String())
	assert.Equal(t, "Launch", StepLaunch.String())
	assert.Equal(t, "Unknown", Step(7).String())
}
