package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_NextMissingField(t *testing.T) {
	p := &Profile{}

	// Fields come back in the fixed intake order.
	for _, want := range IntakeOrder {
		field, ok := p.NextMissingField()
		require.True(t, ok)
		assert.Equal(t, want, field)
		p.Set(field, "answered")
	}

	_, ok := p.NextMissingField()
	assert.False(t, ok)
	assert.True(t, p.Complete())
}

func TestProfile_SetDistinguishesEmptyFromMissing(t *testing.T) {
	p := &Profile{}
	p.Set(FieldName, "")

	// An empty answer still counts as answered.
	field, ok := p.NextMissingField()
	require.True(t, ok)
	assert.Equal(t, FieldAge, field)
	assert.Equal(t, "", p.Get(FieldName))
}

func TestProfile_JSONRoundTrip(t *testing.T) {
	p := &Profile{}
	p.Set(FieldName, "João")
	p.Set(FieldAge, "30")

	data, err := p.ToJSON()
	require.NoError(t, err)

	decoded, err := ProfileFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "João", decoded.Get(FieldName))
	assert.Equal(t, "30", decoded.Get(FieldAge))

	// Unanswered fields stay missing after the round trip.
	field, ok := decoded.NextMissingField()
	require.True(t, ok)
	assert.Equal(t, FieldGoal, field)
}

func TestProfileFromJSON_EmptyContext(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("{}")} {
		decoded, err := ProfileFromJSON(data)
		require.NoError(t, err)
		field, ok := decoded.NextMissingField()
		require.True(t, ok)
		assert.Equal(t, FieldName, field)
	}
}

func TestProfile_Rows(t *testing.T) {
	p := &Profile{}
	p.Set(FieldWeight, "70 kg")
	p.Set(FieldName, "João")

	rows := p.Rows()
	require.Len(t, rows, 2)

	// Intake order, not fill order.
	assert.Equal(t, [2]string{"Nome", "João"}, rows[0])
	assert.Equal(t, [2]string{"Peso", "70 kg"}, rows[1])
}

func TestProfile_Description(t *testing.T) {
	t.Run("lists filled fields", func(t *testing.T) {
		p := &Profile{}
		p.Set(FieldName, "João")
		p.Set(FieldGoal, "perder peso")

		desc := p.Description()
		assert.Contains(t, desc, "Nome: João")
		assert.Contains(t, desc, "Objetivo: perder peso")
	})

	t.Run("empty profile has a placeholder", func(t *testing.T) {
		p := &Profile{}
		assert.Contains(t, p.Description(), "sem dados de perfil")
	})
}
