// README: JSON schemas applied to each agent response right after the model call.
package agents

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema violations are generation failures for the stage that produced them,
// exactly like unparseable JSON: the shape is checked here, before any field is
// used downstream.

const hotelSchemaJSON = `{
  "type": "object",
  "required": ["accommodationOptions"],
  "properties": {
    "accommodationOptions": {
      "type": "array",
      "minItems": 1,
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["name", "location", "mapsLink", "priceRange"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "location": {"type": "string"},
          "mapsLink": {"type": "string"},
          "priceRange": {"type": "string"}
        }
      }
    }
  }
}`

const restaurantSchemaJSON = `{
  "type": "object",
  "required": ["restaurantsByDay"],
  "properties": {
    "restaurantsByDay": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["day", "restaurants"],
        "properties": {
          "day": {"type": "integer", "minimum": 1},
          "restaurants": {
            "type": "array",
            "minItems": 3,
            "maxItems": 3,
            "items": {
              "type": "object",
              "required": ["type", "restaurant"],
              "properties": {
                "type": {"type": "string"},
                "restaurant": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    }
  }
}`

const attractionSchemaJSON = `{
  "type": "object",
  "required": ["attractionsByDay"],
  "properties": {
    "attractionsByDay": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["day", "attractions"],
        "properties": {
          "day": {"type": "integer", "minimum": 1},
          "attractions": {
            "type": "array",
            "minItems": 3,
            "items": {
              "type": "object",
              "required": ["timeOfDay", "activity"],
              "properties": {
                "timeOfDay": {"type": "string", "enum": ["Morning", "Afternoon", "Evening"]},
                "activity": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    }
  }
}`

const itinerarySchemaJSON = `{
  "type": "object",
  "required": ["title", "destination", "duration", "overview", "days"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "destination": {"type": "string", "minLength": 1},
    "days": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["day", "activities", "meals"],
        "properties": {
          "day": {"type": "integer", "minimum": 1},
          "activities": {"type": "array", "minItems": 3},
          "meals": {"type": "array", "minItems": 3, "maxItems": 3}
        }
      }
    }
  }
}`

var (
	hotelSchema      = mustSchema(hotelSchemaJSON)
	restaurantSchema = mustSchema(restaurantSchemaJSON)
	attractionSchema = mustSchema(attractionSchemaJSON)
	itinerarySchema  = mustSchema(itinerarySchemaJSON)
)

func mustSchema(raw string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic("agents: invalid embedded schema: " + err.Error())
	}
	return s
}

// validateAgainst checks the raw model response against the stage schema and
// returns a single error summarizing all violations.
func validateAgainst(schema *gojsonschema.Schema, raw string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("response failed schema validation: %s", strings.Join(msgs, "; "))
}
