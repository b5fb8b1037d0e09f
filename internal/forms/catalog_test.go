package forms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permitdesk/permit-cli/internal/model"
)

func TestPacket(t *testing.T) {
	t.Parallel()

	catalog, err := Load("")
	require.NoError(t, err)

	t.Run("city entry", func(t *testing.T) {
		t.Parallel()
		packet := catalog.Packet("Los Angeles, CA", model.TradeElectrical)
		require.Len(t, packet, 2)
		assert.Equal(t, "LA-E1", packet[0].ID)
		assert.Equal(t, "LA Dept. of Building and Safety", packet[0].Agency)
	})

	t.Run("regional fallback", func(t *testing.T) {
		t.Parallel()
		packet := catalog.Packet("Fresno, CA", model.TradePlumbing)
		require.Len(t, packet, 1)
		assert.Equal(t, "CAR-P1", packet[0].ID)
	})

	t.Run("generic fallback", func(t *testing.T) {
		t.Parallel()
		packet := catalog.Packet("Anchorage, AK", model.TradeRoofing)
		require.NotEmpty(t, packet)
		assert.Equal(t, "STD-B1", packet[0].ID)
	})

	t.Run("trades sharing the general schedule share packets", func(t *testing.T) {
		t.Parallel()
		fence := catalog.Packet("Houston, TX", model.TradeFence)
		demo := catalog.Packet("Houston, TX", model.TradeDemolition)
		assert.Equal(t, fence, demo)
	})

	t.Run("solar packet carries notarized attestation", func(t *testing.T) {
		t.Parallel()
		packet := catalog.Packet("New York, NY", model.TradeSolar)
		require.Len(t, packet, 3)
		assert.True(t, packet[2].Notarized)
	})
}

func TestLoadOverride(t *testing.T) {
	t.Parallel()

	override := `
"Houston, TX":
  electrical:
    - id: HOU-E9
      name: Revised Electrical Application
      agency: Houston Permitting Center
`
	path := filepath.Join(t.TempDir(), "forms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	catalog, err := Load(path)
	require.NoError(t, err)

	// Override replaces the jurisdiction entry wholesale; the plumbing
	// packet is gone and the lookup falls to the generic bucket.
	packet := catalog.Packet("Houston, TX", model.TradeElectrical)
	require.Len(t, packet, 1)
	assert.Equal(t, "HOU-E9", packet[0].ID)

	plumbing := catalog.Packet("Houston, TX", model.TradePlumbing)
	require.NotEmpty(t, plumbing)
	assert.Equal(t, "STD-P1", plumbing[0].ID)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
