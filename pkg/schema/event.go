package schema

const ShopperEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "shopper_event",
	"fields" : [
		{"name": "shopper", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "product_name", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "price", "type": "long"},
		{"name": "at", "type": "long"}
	]
}`

// ShopperEventV1 is the wire form of one catalog interaction.
// At carries unix milliseconds.
type ShopperEventV1 struct {
	Shopper     string `avro:"shopper"`
	Kind        string `avro:"kind"`
	ProductID   string `avro:"product_id"`
	ProductName string `avro:"product_name"`
	Category    string `avro:"category"`
	Price       int64  `avro:"price"`
	At          int64  `avro:"at"`
}
