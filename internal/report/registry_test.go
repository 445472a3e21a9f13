package report

import "testing"

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  Category
	}{
		{
			name:  "data topic",
			topic: "sensor/bme680/data",
			want:  CategoryData,
		},
		{
			name:  "iaq topic",
			topic: "sensor/bme680/iaq",
			want:  CategoryAirQuality,
		},
		{
			name:  "status topic",
			topic: "sensor/bme680/status",
			want:  CategoryStatus,
		},
		{
			name:  "alert topic",
			topic: "sensor/bme680/alert",
			want:  CategoryAlert,
		},
		{
			name:  "unregistered sibling topic",
			topic: "sensor/bme680/debug",
			want:  CategoryUnknown,
		},
		{
			name:  "prefix only",
			topic: "sensor/bme680",
			want:  CategoryUnknown,
		},
		{
			name:  "case differs",
			topic: "sensor/bme680/DATA",
			want:  CategoryUnknown,
		},
		{
			name:  "trailing slash",
			topic: "sensor/bme680/data/",
			want:  CategoryUnknown,
		},
		{
			name:  "empty topic",
			topic: "",
			want:  CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategoryOf(tt.topic)
			if got != tt.want {
				t.Errorf("CategoryOf(%q) = %v, want %v", tt.topic, got, tt.want)
			}
		})
	}
}

func TestAllTopics(t *testing.T) {
	specs := AllTopics()

	if len(specs) != 4 {
		t.Fatalf("len(AllTopics()) = %d, want 4", len(specs))
	}

	wantOrder := []string{
		"sensor/bme680/data",
		"sensor/bme680/iaq",
		"sensor/bme680/status",
		"sensor/bme680/alert",
	}
	for i, spec := range specs {
		if spec.Topic != wantOrder[i] {
			t.Errorf("AllTopics()[%d].Topic = %q, want %q", i, spec.Topic, wantOrder[i])
		}
		if spec.QoS != 0 {
			t.Errorf("AllTopics()[%d].QoS = %d, want 0", i, spec.QoS)
		}
	}
}

func TestAllTopics_UniqueTopics(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range AllTopics() {
		if seen[spec.Topic] {
			t.Errorf("duplicate topic in registry: %q", spec.Topic)
		}
		seen[spec.Topic] = true
	}
}

func TestAllTopics_AllClassified(t *testing.T) {
	// Every registry entry must classify to a non-Unknown category.
	for _, spec := range AllTopics() {
		if CategoryOf(spec.Topic) == CategoryUnknown {
			t.Errorf("registry topic %q classifies as Unknown", spec.Topic)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryData, "data"},
		{CategoryAirQuality, "air-quality"},
		{CategoryStatus, "status"},
		{CategoryAlert, "alert"},
		{CategoryUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
