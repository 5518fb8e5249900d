package mpd

import (
	"strconv"
	"strings"
)

func cmdOutputs(s *Server, c *clientContext, argv []string) (string, error) {
	var w strings.Builder
	for _, o := range s.Player.Outputs() {
		w.WriteString("outputid: " + strconv.Itoa(o.ID) + "\n")
		w.WriteString("outputname: " + o.Name + "\n")
		w.WriteString("plugin: " + o.Plugin + "\n")
		w.WriteString("outputenabled: " + strconv.Itoa(boolInt(o.Enabled)) + "\n")
		if o.Volume >= 0 {
			w.WriteString("attribute: volume=" + strconv.Itoa(o.Volume) + "\n")
		}
	}
	return w.String(), nil
}

func cmdEnableOutput(s *Server, c *clientContext, argv []string) (string, error) {
	id, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.EnableOutput(id)
}

func cmdDisableOutput(s *Server, c *clientContext, argv []string) (string, error) {
	id, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.DisableOutput(id)
}

func cmdToggleOutput(s *Server, c *clientContext, argv []string) (string, error) {
	id, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.ToggleOutput(id)
}

func cmdOutputVolume(s *Server, c *clientContext, argv []string) (string, error) {
	id, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	v, err := parseIntArg(argv[1])
	if err != nil {
		return "", err
	}
	return "", s.Player.SetOutputVolume(id, v)
}
