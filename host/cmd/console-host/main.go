package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"statusconsole/config"
	"statusconsole/host/device"
	"statusconsole/host/serial"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file (device/baud fall back to built-in defaults when unset)")
	devicePath = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
)

func loadConfig() (*config.Config, error) {
	if *configPath == "" {
		return config.Default(), nil
	}
	return config.Load(*configPath)
}

func main() {
	flag.Parse()

	fmt.Println("Status Console Host")
	fmt.Println("====================")

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *devicePath != "" {
		cfg.Serial.Device = *devicePath
	}
	if *baud != 0 {
		cfg.Serial.BaudRate = *baud
	}
	if cfg.Serial.Device == "" {
		cfg.Serial.Device = "/dev/ttyACM0"
	}

	dev := device.New()
	dev.OnLine(func(line string) {
		if *verbose || strings.HasPrefix(line, "REQ ") || strings.HasPrefix(line, "SELECT ") {
			fmt.Printf("\n<- %s\n> ", line)
		}
	})

	fmt.Printf("Connecting to %s at %d baud...\n", cfg.Serial.Device, cfg.Serial.BaudRate)
	serialCfg := serial.DefaultConfig(cfg.Serial.Device)
	serialCfg.Baud = cfg.Serial.BaudRate
	if err := dev.ConnectWithConfig(serialCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer dev.Close()

	fmt.Println("Connected. Type 'help' for available commands, 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "telemetry":
			if err := dev.SendTelemetry(args); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "meta":
			if len(args) != 1 {
				fmt.Println("usage: meta <interval-seconds>")
				continue
			}
			if err := dev.SendMetaInterval(parseFloatOrZero(args[0])); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "commands":
			if err := dev.SendCommands(demoCommands()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "demo":
			runDemo(dev)

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", cmd)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  telemetry <line> [line...]  - Send a telemetry frame")
	fmt.Println("  meta <interval-seconds>     - Send a META frame")
	fmt.Println("  commands                    - Send a demo COMMANDS v1 frame")
	fmt.Println("  demo                        - Run a short scripted META/telemetry demo")
	fmt.Println("  quit/exit/q                 - Exit the program")
	fmt.Println()
}

func demoCommands() []device.Command {
	return []device.Command{
		{ID: "7", Label: "Reboot now"},
		{ID: "9", Label: "Shutdown"},
	}
}

func runDemo(dev *device.Device) {
	fmt.Println("Sending META interval=2.0 ...")
	dev.SendMetaInterval(2.0)

	fmt.Println("Sending telemetry ...")
	dev.SendTelemetry([]string{"CPU: 37%", "Mem: 512/2048 MB", "Uptime: 3:14:07"})
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
