package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

const forwardedForHeader = "X-Forwarded-For"

// ClientIPResolver определяет адрес клиента.
// X-Forwarded-For читается только если соединение пришло от доверенного прокси.
type ClientIPResolver struct {
	trusted []*net.IPNet
}

// NewClientIPResolver принимает адреса и подсети доверенных прокси ("10.0.0.1", "10.0.0.0/8").
// Пустой список означает, что заголовку не доверяем.
func NewClientIPResolver(trustedProxies []string) (*ClientIPResolver, error) {
	r := &ClientIPResolver{trusted: make([]*net.IPNet, 0, len(trustedProxies))}

	for _, entry := range trustedProxies {
		network, err := ParseProxy(entry)
		if err != nil {
			return nil, err
		}
		r.trusted = append(r.trusted, network)
	}

	return r, nil
}

// ParseProxy разбирает адрес или подсеть доверенного прокси
func ParseProxy(entry string) (*net.IPNet, error) {
	entry = strings.TrimSpace(entry)

	if strings.Contains(entry, "/") {
		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("middleware: invalid trusted proxy %q: %w", entry, err)
		}
		return network, nil
	}

	ip := net.ParseIP(entry)
	if ip == nil {
		return nil, fmt.Errorf("middleware: invalid trusted proxy %q", entry)
	}
	bits := 8 * net.IPv4len
	if ip.To4() == nil {
		bits = 8 * net.IPv6len
	}
	return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, nil
}

// Resolve возвращает адрес клиента. Цепочка X-Forwarded-For проходится справа налево,
// доверенные прокси пропускаются, первый недоверенный адрес и есть клиент.
func (c *ClientIPResolver) Resolve(r *http.Request) string {
	peer := remoteHost(r)
	if !c.isTrusted(net.ParseIP(peer)) {
		return peer
	}

	header := r.Header.Get(forwardedForHeader)
	if header == "" {
		return peer
	}

	hops := strings.Split(header, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		ip := net.ParseIP(hop)
		if ip == nil {
			// Подделанная или битая цепочка
			return peer
		}
		if i == 0 || !c.isTrusted(ip) {
			return ip.String()
		}
	}

	return peer
}

func (c *ClientIPResolver) isTrusted(ip net.IP) bool {
	if ip == nil {
		return false
	}
	for _, network := range c.trusted {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
