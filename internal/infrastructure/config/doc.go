// Package config handles loading and validating sensorwatch configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// The config file is optional. A diagnostic console is usually pointed at a
// broker with -host/-port flags alone, so Default() returns a complete,
// valid configuration for a local unauthenticated broker.
//
// Security Considerations:
//   - Broker credentials should be set via environment variables
//     (SENSORWATCH_MQTT_USERNAME / SENSORWATCH_MQTT_PASSWORD) rather than
//     committed to a config file
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.MQTT.Broker.Host)
package config
