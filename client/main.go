// A small interactive client for playing against a running server. Each
// invocation is one browser-like identity: the session cookie is kept for
// the lifetime of the process.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/websocket"
)

type client struct {
	base string
	http *http.Client
}

func newClient(base string) *client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatalf("Cookie jar: %v", err)
	}
	return &client{
		base: base,
		http: &http.Client{Jar: jar},
	}
}

// call performs one API request and returns the body.
func (c *client) call(path string) (string, error) {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return string(body), nil
}

// watch tails the room over the watch websocket and prints every snapshot.
func (c *client) watch(host, room string) {
	u := url.URL{Scheme: "ws", Host: host, Path: "/watch/" + room}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Printf("Watch dial failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Watch closed: %v", err)
			return
		}
		log.Printf("<- ROOM: %s", message)
	}
}

func main() {
	host := flag.String("host", "localhost:8000", "server address")
	flag.Parse()

	c := newClient("http://" + *host)

	fmt.Println("Commands: new | join <room> | leave <room> | start <room> |")
	fmt.Println("          status <room> | watch <room> | flip <room> |")
	fmt.Println("          place <room> <stack> | take <room> <stack> | quit")

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var path string
		switch fields[0] {
		case "quit":
			return
		case "new":
			path = "/new"
		case "join", "leave", "start", "status":
			if len(fields) != 2 {
				fmt.Println("Usage:", fields[0], "<room>")
				continue
			}
			path = "/" + fields[0] + "/" + fields[1]
		case "watch":
			if len(fields) != 2 {
				fmt.Println("Usage: watch <room>")
				continue
			}
			go c.watch(*host, fields[1])
			continue
		case "flip":
			if len(fields) != 2 {
				fmt.Println("Usage: flip <room>")
				continue
			}
			path = "/perform/" + fields[1] + "/flip"
		case "place", "take":
			if len(fields) != 3 {
				fmt.Println("Usage:", fields[0], "<room> <stack>")
				continue
			}
			path = "/perform/" + fields[1] + "/" + fields[0] + "-" + fields[2]
		default:
			fmt.Println("Unknown command:", fields[0])
			continue
		}

		body, err := c.call(path)
		if err != nil {
			log.Printf("Request failed: %v", err)
			continue
		}
		log.Printf("<- %s", body)
	}
}
