package catalog

import (
	"encoding/json"
	"math"
	"testing"

	"gamecatalog/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameInputDecodesPresence(t *testing.T) {
	var in GameInput
	require.NoError(t, json.Unmarshal([]byte(`{"titulo":" Celeste ","nota":9}`), &in))

	require.NotNil(t, in.Title)
	assert.Equal(t, " Celeste ", *in.Title)
	assert.Nil(t, in.Platform)
	assert.Nil(t, in.Genre)
	assert.False(t, in.Year.Set)
	assert.Equal(t, Number(9), in.Rating)
}

func TestNumericFieldCoercion(t *testing.T) {
	var in GameInput
	require.NoError(t, json.Unmarshal([]byte(`{"ano":"2018","nota":" 7.5 "}`), &in))
	assert.Equal(t, Number(2018), in.Year)
	assert.Equal(t, Number(7.5), in.Rating)
}

func TestNumericFieldNullIsUnset(t *testing.T) {
	var in GameInput
	require.NoError(t, json.Unmarshal([]byte(`{"ano":null,"titulo":null}`), &in))
	assert.False(t, in.Year.Set)
	assert.Nil(t, in.Title)
}

func TestNumericFieldBlankStringIsZero(t *testing.T) {
	var in GameInput
	require.NoError(t, json.Unmarshal([]byte(`{"nota":"","ano":"  "}`), &in))
	assert.Equal(t, Number(0), in.Rating)
	assert.Equal(t, Number(0), in.Year)
	assert.Empty(t, Validate(GameInput{Rating: in.Rating}, ModeUpdate))
	assert.Equal(t, []string{MsgYearRange}, Validate(GameInput{Year: in.Year}, ModeUpdate))
}

func TestNumericFieldUnparsableStringIsNaN(t *testing.T) {
	var in GameInput
	require.NoError(t, json.Unmarshal([]byte(`{"ano":"soon"}`), &in))
	assert.True(t, in.Year.Set)
	assert.True(t, math.IsNaN(in.Year.Value))
	assert.Equal(t, []string{MsgYearRange}, Validate(in, ModeUpdate))
}

func TestGameInputRejectsWrongTypes(t *testing.T) {
	for _, body := range []string{
		`{"ano":true}`,
		`{"nota":[1]}`,
		`{"titulo":42}`,
		`{"plataforma":{}}`,
		`[]`,
	} {
		var in GameInput
		assert.Error(t, json.Unmarshal([]byte(body), &in), body)
	}
}

func TestApplyOnlyTouchesPresentFields(t *testing.T) {
	year := 2015
	rating := 10.0
	game := models.Game{ID: 1, Title: "The Witcher 3", Platform: "PC", Genre: "RPG", Year: &year, Rating: &rating}

	GameInput{Rating: Number(7)}.Apply(&game)

	assert.Equal(t, int64(1), game.ID)
	assert.Equal(t, "The Witcher 3", game.Title)
	assert.Equal(t, "PC", game.Platform)
	assert.Equal(t, "RPG", game.Genre)
	require.NotNil(t, game.Year)
	assert.Equal(t, 2015, *game.Year)
	require.NotNil(t, game.Rating)
	assert.Equal(t, 7.0, *game.Rating)
}

func TestApplyTrimsStrings(t *testing.T) {
	var game models.Game
	GameInput{Title: Text("  Celeste "), Platform: Text(" Switch"), Genre: Text("Platformer  ")}.Apply(&game)

	assert.Equal(t, "Celeste", game.Title)
	assert.Equal(t, "Switch", game.Platform)
	assert.Equal(t, "Platformer", game.Genre)
	assert.Nil(t, game.Year)
	assert.Nil(t, game.Rating)
}
