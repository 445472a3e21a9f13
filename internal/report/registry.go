package report

// Topics published by the BME680 sensor node.
// These must match the ESP32 firmware's MQTT configuration exactly.
const (
	TopicData   = "sensor/bme680/data"
	TopicIAQ    = "sensor/bme680/iaq"
	TopicStatus = "sensor/bme680/status"
	TopicAlert  = "sensor/bme680/alert"
)

// Category identifies the semantic kind of a subscribed topic.
// The set is closed: every category has exactly one formatter, selected
// in a single switch in the dispatcher.
type Category int

const (
	// CategoryUnknown covers any topic not in the registry.
	// It is a fallback, not an error.
	CategoryUnknown Category = iota

	// CategoryData carries raw sensor readings (temperature, humidity,
	// pressure, gas resistance).
	CategoryData

	// CategoryAirQuality carries the computed IAQ index and its derived values.
	CategoryAirQuality

	// CategoryStatus carries node online/offline announcements.
	CategoryStatus

	// CategoryAlert carries threshold-breach notifications.
	CategoryAlert
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryData:
		return "data"
	case CategoryAirQuality:
		return "air-quality"
	case CategoryStatus:
		return "status"
	case CategoryAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// TopicSpec pairs a topic with the delivery level requested at subscribe time.
type TopicSpec struct {
	Topic string
	QoS   byte
}

// AllTopics returns the fixed, ordered set of topics the console subscribes to.
//
// The sensor node publishes at QoS 0 (at most once); requesting a higher
// level at subscribe time would gain nothing, so every entry uses QoS 0.
// The order only matters for the subscription lines printed at connect.
func AllTopics() []TopicSpec {
	return []TopicSpec{
		{Topic: TopicData, QoS: 0},
		{Topic: TopicIAQ, QoS: 0},
		{Topic: TopicStatus, QoS: 0},
		{Topic: TopicAlert, QoS: 0},
	}
}

// CategoryOf classifies a topic string.
//
// Classification is total: exact string match only, and any topic outside
// the registry maps to CategoryUnknown rather than an error.
func CategoryOf(topic string) Category {
	switch topic {
	case TopicData:
		return CategoryData
	case TopicIAQ:
		return CategoryAirQuality
	case TopicStatus:
		return CategoryStatus
	case TopicAlert:
		return CategoryAlert
	default:
		return CategoryUnknown
	}
}
