package screenlogic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

// mDNS defaults for gateway discovery.
const (
	defaultServiceType     = "_screenlogic._tcp"
	defaultDomain          = "local."
	defaultDiscoveryWindow = 5 * time.Second
)

// StaticLocator returns a fixed, configured gateway address and performs no
// network discovery.
type StaticLocator struct {
	Addr Addr
}

func (l StaticLocator) Locate(ctx context.Context, systemName string) (Addr, error) {
	if l.Addr.IP == "" {
		return Addr{}, fmt.Errorf("static gateway address is not configured")
	}
	return l.Addr, nil
}

// MDNSLocator discovers gateways advertised over mDNS. Safe for concurrent
// use: each Locate runs its own browse with function-local state.
type MDNSLocator struct {
	serviceType string
	domain      string
	window      time.Duration
}

// NewMDNSLocator builds a locator browsing the standard gateway service type.
// window bounds a single browse; zero selects the default.
func NewMDNSLocator(window time.Duration) *MDNSLocator {
	if window <= 0 {
		window = defaultDiscoveryWindow
	}
	return &MDNSLocator{
		serviceType: defaultServiceType,
		domain:      defaultDomain,
		window:      window,
	}
}

// Locate browses for the gateway advertising the given system name. An empty
// systemName matches the first gateway seen. Returns the first IPv4 match or
// an error once the browse window closes.
func (l *MDNSLocator) Locate(ctx context.Context, systemName string) (Addr, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return Addr{}, fmt.Errorf("init mDNS resolver: %w", err)
	}

	browseCtx, cancel := context.WithTimeout(ctx, l.window)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry, 8)
	found := make(chan Addr, 1)

	go func() {
		for entry := range entries {
			if !matchesSystem(entry.Instance, systemName) {
				continue
			}
			if len(entry.AddrIPv4) == 0 {
				continue
			}
			select {
			case found <- Addr{IP: entry.AddrIPv4[0].String(), Port: entry.Port}:
				cancel()
			default:
			}
		}
	}()

	if err := resolver.Browse(browseCtx, l.serviceType, l.domain, entries); err != nil {
		return Addr{}, fmt.Errorf("mDNS browse: %w", err)
	}

	<-browseCtx.Done()
	select {
	case addr := <-found:
		return addr, nil
	default:
	}
	if err := ctx.Err(); err != nil {
		return Addr{}, fmt.Errorf("gateway discovery canceled: %w", err)
	}
	return Addr{}, fmt.Errorf("gateway %q not found on the local network", systemName)
}

// matchesSystem compares a discovered instance name against the requested
// system name. Gateways advertise as "Pentair: XX-XX-XX"; comparison is
// case-insensitive on the suffix so either spelling is accepted.
func matchesSystem(instance, systemName string) bool {
	if systemName == "" {
		return true
	}
	return strings.EqualFold(instance, systemName) ||
		strings.EqualFold(strings.TrimPrefix(instance, "Pentair: "), strings.TrimPrefix(systemName, "Pentair: "))
}
