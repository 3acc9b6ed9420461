package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopvision/internal/appearance"
	"hoopvision/internal/stats"
)

func TestWriteGolden(t *testing.T) {
	t.Parallel()

	doc := Document{
		League:      "nba",
		Season:      "2025-26",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Players: []Player{{
			ID:   "1630162",
			Name: "Anthony Edwards",
			Team: "MIN",
			Appearance: appearance.Result{
				SkinTone:   8,
				Hair:       1,
				FacialHair: 9,
			},
			Attributes: stats.Ratings{
				InsideScoring: 88,
				MidRange:      84,
				ThreePoint:    86,
				Defense:       80,
				Rebounding:    75,
				Passing:       78,
			},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	want := `{
  "league": "nba",
  "season": "2025-26",
  "generated_at": "2026-03-01T12:00:00Z",
  "players": [
    {
      "id": "1630162",
      "name": "Anthony Edwards",
      "team": "MIN",
      "appearance": {
        "skin_tone": 8,
        "hair": 1,
        "facial_hair": 9,
        "accessory": 0
      },
      "attributes": {
        "inside_scoring": 88,
        "mid_range": 84,
        "three_point": 86,
        "defense": 80,
        "rebounding": 75,
        "passing": 78
      }
    }
  ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteOrdersPlayers(t *testing.T) {
	t.Parallel()

	doc := Document{
		League: "nba",
		Season: "2025-26",
		Players: []Player{
			{ID: "2", Name: "Zeke", Team: "NYK"},
			{ID: "3", Name: "Abe", Team: "BOS"},
			{ID: "1", Name: "Abe", Team: "BOS"},
		},
	}

	var first, second bytes.Buffer
	require.NoError(t, Write(&first, doc))

	// Shuffling the input roster must not change a byte of the output.
	doc.Players[0], doc.Players[2] = doc.Players[2], doc.Players[0]
	require.NoError(t, Write(&second, doc))
	assert.Equal(t, first.String(), second.String())

	got, err := Read(&first)
	require.NoError(t, err)
	require.Len(t, got.Players, 3)
	assert.Equal(t, "1", got.Players[0].ID)
	assert.Equal(t, "3", got.Players[1].ID)
	assert.Equal(t, "2", got.Players[2].ID)
}

func TestWriteLeavesCallerSliceAlone(t *testing.T) {
	t.Parallel()

	players := []Player{
		{ID: "2", Team: "NYK"},
		{ID: "1", Team: "BOS"},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Document{Players: players}))

	assert.Equal(t, "2", players[0].ID, "caller order untouched")
	assert.Equal(t, "1", players[1].ID)
}

func TestReadRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Read(bytes.NewReader([]byte("not json")))
	assert.Error(t, err)
}
