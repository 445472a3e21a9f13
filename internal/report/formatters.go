package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// notAvailable marks a field the payload did not carry.
// This is the marker the sensor node's original tooling prints.
const notAvailable = "N/A"

// Tier is the severity bucket derived from a continuous IAQ score.
type Tier int

const (
	TierExcellent       Tier = iota + 1 // score <= 50
	TierGood                            // score <= 100
	TierLightlyPolluted                 // score <= 150
	TierPolluted                        // score > 150
)

// tierOf buckets an IAQ score into a severity tier.
// Boundaries are inclusive, matching the firmware's IAQ level table
// (0-50 excellent, 51-100 good, 101-150 lightly polluted).
func tierOf(score float64) Tier {
	switch {
	case score <= 50:
		return TierExcellent
	case score <= 100:
		return TierGood
	case score <= 150:
		return TierLightlyPolluted
	default:
		return TierPolluted
	}
}

// Marker returns the coloured console indicator for the tier.
func (t Tier) Marker() string {
	switch t {
	case TierExcellent:
		return "🟢"
	case TierGood:
		return "🟡"
	case TierLightlyPolluted:
		return "🟠"
	default:
		return "🔴"
	}
}

// Status markers for the node's online/offline announcements.
const (
	markerPositive = "🟢"
	markerNegative = "🔴"
)

// line renders one labelled report line with a fixed-width label column.
func line(label, value string) string {
	return fmt.Sprintf("%-12s : %s", label, value)
}

// floatField renders a numeric payload field with the given precision and
// unit, or the not-available marker when the field is absent.
func floatField(p Payload, key string, prec int, unit string) (string, error) {
	v, ok, err := p.Float(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return notAvailable, nil
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if unit != "" {
		s += " " + unit
	}
	return s, nil
}

// boolField renders a boolean payload field, or the not-available marker
// when the field is absent.
func boolField(p Payload, key string) (string, error) {
	v, ok, err := p.Bool(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return notAvailable, nil
	}
	return strconv.FormatBool(v), nil
}

// stringField renders a string payload field, or the not-available marker
// when the field is absent.
func stringField(p Payload, key string) (string, error) {
	v, ok, err := p.String(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return notAvailable, nil
	}
	return v, nil
}

// formatData renders a raw sensor reading: five lines, one per field.
func formatData(p Payload) ([]string, error) {
	temperature, err := floatField(p, "temperature", 2, "°C")
	if err != nil {
		return nil, err
	}
	humidity, err := floatField(p, "humidity", 2, "%")
	if err != nil {
		return nil, err
	}
	pressure, err := floatField(p, "pressure", 2, "hPa")
	if err != nil {
		return nil, err
	}
	gasResistance, err := floatField(p, "gas_resistance", 0, "Ω")
	if err != nil {
		return nil, err
	}
	gasValid, err := boolField(p, "gas_valid")
	if err != nil {
		return nil, err
	}

	return []string{
		line("Temperature", temperature),
		line("Humidity", humidity),
		line("Pressure", pressure),
		line("Gas Resist.", gasResistance),
		line("Gas Valid", gasValid),
	}, nil
}

// formatAirQuality renders an IAQ report with a severity marker on the
// score line. A missing score defaults to 0 for tier selection but still
// renders as not available.
func formatAirQuality(p Payload) ([]string, error) {
	score, present, err := p.Float("iaq_score")
	if err != nil {
		return nil, err
	}
	scoreText := notAvailable
	if present {
		scoreText = strconv.FormatFloat(score, 'f', 1, 64)
	}

	label, ok, err := p.String("iaq_text")
	if err != nil {
		return nil, err
	}
	if !ok {
		label = "Unknown"
	}

	level, err := floatField(p, "iaq_level", 0, "")
	if err != nil {
		return nil, err
	}
	accuracy, err := floatField(p, "accuracy", 0, "")
	if err != nil {
		return nil, err
	}
	co2, err := floatField(p, "co2_equivalent", 0, "ppm")
	if err != nil {
		return nil, err
	}
	voc, err := floatField(p, "voc_equivalent", 2, "ppm")
	if err != nil {
		return nil, err
	}
	calibrated, err := boolField(p, "is_calibrated")
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("%s %s [%s]", tierOf(score).Marker(), line("IAQ Score", scoreText), label),
		line("IAQ Level", level),
		line("Accuracy", accuracy),
		line("CO2 Equiv.", co2),
		line("VOC Equiv.", voc),
		line("Calibrated", calibrated),
	}, nil
}

// formatStatus renders a node online/offline announcement.
// The value "online" gets the positive marker; anything else is negative.
func formatStatus(p Payload) ([]string, error) {
	status, ok, err := p.String("status")
	if err != nil {
		return nil, err
	}
	if !ok {
		status = "unknown"
	}

	clientID, ok, err := p.String("client_id")
	if err != nil {
		return nil, err
	}
	if !ok {
		clientID = "unknown"
	}

	marker := markerNegative
	if status == "online" {
		marker = markerPositive
	}

	return []string{
		fmt.Sprintf("%s %s", marker, line("Status", status)),
		line("Client ID", clientID),
	}, nil
}

// formatAlert renders a threshold-breach notification.
func formatAlert(p Payload) ([]string, error) {
	alertType, err := stringField(p, "type")
	if err != nil {
		return nil, err
	}
	message, err := stringField(p, "message")
	if err != nil {
		return nil, err
	}
	clientID, err := stringField(p, "client_id")
	if err != nil {
		return nil, err
	}

	return []string{
		line("Alert Type", alertType),
		line("Message", message),
		line("Client ID", clientID),
	}, nil
}

// formatUnknown renders the whole document as indented JSON.
// Used for topics outside the registry, where no field list applies.
func formatUnknown(p Payload) ([]string, error) {
	pretty, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering payload: %w", err)
	}
	return strings.Split(string(pretty), "\n"), nil
}
