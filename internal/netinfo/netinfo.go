// Package netinfo finds the addresses other machines on the LAN can use to
// reach a local server.
package netinfo

import (
	"fmt"
	"net"
	"slices"
)

// Fallback is returned when no LAN address is found.
const Fallback = "localhost"

// LocalIPv4 returns the non-loopback IPv4 addresses of the interfaces that
// are up, sorted. It returns []string{Fallback} when there are none.
func LocalIPv4() []string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return []string{Fallback}
	}

	var addrs []net.Addr
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		a, err := iface.Addrs()
		if err != nil {
			continue
		}
		addrs = append(addrs, a...)
	}
	return filterIPv4(addrs)
}

func filterIPv4(addrs []net.Addr) []string {
	var out []string
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		ip4 := ip.To4()
		if ip4 == nil || ip4.IsLoopback() || ip4.IsLinkLocalUnicast() {
			continue
		}
		out = append(out, ip4.String())
	}

	if len(out) == 0 {
		return []string{Fallback}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// SSHCommands returns one "ssh <host> -p <port>" line per address.
func SSHCommands(hosts []string, port int) []string {
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		out = append(out, fmt.Sprintf("ssh %s -p %d", h, port))
	}
	return out
}
