package model

import "testing"

func TestNewPageRequest(t *testing.T) {
	pr := NewPageRequest("  cat  ", 20, 1)

	if pr.Tag != "cat" {
		t.Errorf("Expected tag to be trimmed to 'cat', got '%s'", pr.Tag)
	}
	if pr.ID == "" {
		t.Error("Expected a correlation id")
	}
	if other := NewPageRequest("cat", 20, 1); other.ID == pr.ID {
		t.Error("Expected distinct ids for distinct requests")
	}
}

func TestPageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PageRequest
		wantErr bool
	}{
		{"valid", NewPageRequest("cat", 20, 1), false},
		{"empty tag", NewPageRequest("   ", 20, 1), true},
		{"zero page size", NewPageRequest("cat", 0, 1), true},
		{"zero page", NewPageRequest("cat", 20, 0), true},
		{"negative page", NewPageRequest("cat", 20, -3), true},
	}

	for _, test := range tests {
		err := test.req.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", test.name, err, test.wantErr)
		}
	}
}

func TestPageRequest_Paging(t *testing.T) {
	first := NewPageRequest("cat", 20, 1)

	if _, ok := first.Prev(); ok {
		t.Error("First page should have no predecessor")
	}

	second := first.Next()
	if second.Page != 2 || second.Tag != "cat" || second.PageSize != 20 {
		t.Errorf("Unexpected next page: %+v", second)
	}

	back, ok := second.Prev()
	if !ok || back.Page != 1 {
		t.Errorf("Expected to go back to page 1, got %+v (ok=%v)", back, ok)
	}
}
