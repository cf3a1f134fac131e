package validators

import "go.mongodb.org/mongo-driver/bson"

// TokenFeedValidator guards the per-doctor per-day counters. Token counters
// never go negative and the key always has the doctorID_date shape.
var TokenFeedValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_key",
			"doctor_id",
			"date",
			"last_token",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"_key": bson.M{
				"bsonType":  "string",
				"minLength": 35,
				"maxLength": 35,
			},

			"doctor_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"date": bson.M{
				"bsonType":  "string",
				"minLength": 10,
				"maxLength": 10,
			},

			"current_token": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"last_token": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},
		},
	},
}
