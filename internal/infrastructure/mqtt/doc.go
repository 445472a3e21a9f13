// Package mqtt provides MQTT client connectivity for the sensorwatch console.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Topic subscriptions with QoS selection
//   - Subscription restoration after reconnect
//   - Panic recovery around message handlers
//
// # Architecture
//
// sensorwatch is a pure listener. The ESP32 sensor node publishes BME680
// telemetry to the broker; this client subscribes and hands each delivery
// to the report dispatcher. There is deliberately no publish path.
//
//	ESP32 node → MQTT Broker → sensorwatch console
//
// Connection lifecycle (connect, reconnect backoff, keepalive) belongs to
// the paho library; the rest of the application only sees the
// on-connect/on-disconnect callbacks and per-message handler invocations.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT, mqtt.Callbacks{
//	    OnConnect: func() { log.Println("connected") },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.Subscribe("sensor/bme680/data", 0,
//	    func(topic string, payload []byte) error {
//	        log.Printf("Received: %s = %s", topic, payload)
//	        return nil
//	    })
package mqtt
