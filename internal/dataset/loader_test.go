package dataset

import "testing"

func TestParse(t *testing.T) {
	data := []byte(`[
		{
			"restaurant_id": "r1",
			"name": "Taj Palace",
			"borough": "Queens",
			"cuisine": "Indian",
			"menu": [
				{"_id": "m1", "name": "Chicken Tikka", "section": "Mains", "price": 12.5}
			]
		}
	]`)

	records, err := Parse(data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.RestaurantID != "r1" || rec.Name != "Taj Palace" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if len(rec.Menu) != 1 || rec.Menu[0].ID != "m1" || rec.Menu[0].Price != 12.5 {
		t.Fatalf("unexpected menu: %+v", rec.Menu)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected error for undecodable dataset")
	}
}
