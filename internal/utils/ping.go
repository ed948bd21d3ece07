// ping.go
//
// A relational customer, item and review data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of reviewsdb.
// reviewsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// reviewsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with reviewsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package utils

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

// PingService dials address, either host:port or a URL, over TCP.
func PingService(address string, timeout time.Duration) error {
	if parsedURL, err := url.Parse(address); err == nil && parsedURL.Scheme != "" && parsedURL.Host != "" {
		host := parsedURL.Hostname()
		port := parsedURL.Port()
		if port == "" {
			switch parsedURL.Scheme {
			case "https":
				port = "443"
			default:
				port = "80"
			}
		}
		address = net.JoinHostPort(host, port)
	}

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}

// PingDatabase dials a database server at host and port.
func PingDatabase(host, port string) error {
	return PingService(net.JoinHostPort(host, port), 1500*time.Millisecond)
}
