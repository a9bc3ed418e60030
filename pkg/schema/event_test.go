package schema

import (
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopperEventV1(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		vMarshal := ShopperEventV1{
			Shopper:     "sess-42",
			Kind:        "added-to-cart",
			ProductID:   "1",
			ProductName: "Neon Dreams Oversized Tee",
			Category:    "anime",
			Price:       4500,
			At:          1724900000000,
		}

		var eventSchema avro.Schema
		require.NotPanics(t, func() {
			eventSchema = avro.MustParse(ShopperEventSchemaTextV1)
		})

		data, err := avro.Marshal(eventSchema, vMarshal)
		require.NoError(t, err)

		var vUnmarshal ShopperEventV1
		err = avro.Unmarshal(eventSchema, data, &vUnmarshal)
		require.NoError(t, err)

		assert.Equal(t, vMarshal, vUnmarshal)
	})
}
