// ABOUTME: Charm KV client wrapper implementing the storage Backend.
// ABOUTME: Writes are pushed to the charm server unless disabled or opened read-only.
package charm

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/gymtrack/internal/storage"
)

const (
	// DefaultDBName is the charm KV database holding gymtrack namespaces.
	DefaultDBName = "gymtrack"
	// DefaultHost is the charm server used when none is configured.
	DefaultHost = "charm.2389.dev"

	NamespacePrefix = "ns:"
)

// ErrReadOnly is returned for writes while another process holds the database lock.
var ErrReadOnly = errors.New("cannot write: database is locked by another process (MCP server?)")

// Client stores namespaces in a charm KV database.
type Client struct {
	mu          sync.RWMutex
	kv          *kv.KV
	pushOnWrite bool
}

var _ storage.Backend = (*Client)(nil)

// Open opens the named charm KV database against host and pulls remote data.
func Open(dbName, host string) (*Client, error) {
	if host == "" {
		host = DefaultHost
	}
	// kv reads the server from the environment when it opens.
	if err := os.Setenv("CHARM_HOST", host); err != nil {
		return nil, fmt.Errorf("set charm host: %w", err)
	}

	db, err := kv.OpenWithDefaultsFallback(dbName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	c := &Client{kv: db, pushOnWrite: true}
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return c, nil
}

// Key returns the KV key for a namespace.
func Key(namespace string) string {
	return NamespacePrefix + namespace
}

// namespaceFromKey strips the namespace prefix from a key.
func namespaceFromKey(key string) string {
	return strings.TrimPrefix(key, NamespacePrefix)
}

// IsReadOnly reports whether another process (usually 'gymtrack mcp') holds the lock.
func (c *Client) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// SetPushOnWrite controls whether Set and Delete push to the server.
// Bulk writers turn it off and call Push once at the end.
func (c *Client) SetPushOnWrite(enabled bool) {
	c.mu.Lock()
	c.pushOnWrite = enabled
	c.mu.Unlock()
}

// Push exchanges local and remote changes with the charm server.
func (c *Client) Push() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// Restore discards the local replica and rebuilds it from the server.
func (c *Client) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

// AccountID returns the charm account linked on this machine.
func (c *Client) AccountID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Get returns the stored value for a namespace.
func (c *Client) Get(namespace string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := c.kv.Get([]byte(Key(namespace)))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", namespace, err)
	}
	return data, nil
}

// Set replaces a namespace value.
func (c *Client) Set(namespace string, data []byte) error {
	return c.write("set", namespace, func(key []byte) error {
		return c.kv.Set(key, data)
	})
}

// Delete removes a namespace.
func (c *Client) Delete(namespace string) error {
	return c.write("delete", namespace, c.kv.Delete)
}

// write runs op under the write lock and pushes afterwards when enabled.
func (c *Client) write(verb, namespace string, op func(key []byte) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := op([]byte(Key(namespace))); err != nil {
		return fmt.Errorf("%s %s: %w", verb, namespace, err)
	}
	if c.pushOnWrite {
		_ = c.kv.Sync()
	}
	return nil
}

// Namespaces lists the gymtrack namespaces present in the database.
func (c *Client) Namespaces() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	var names []string
	for _, key := range keys {
		if bytes.HasPrefix(key, []byte(NamespacePrefix)) {
			names = append(names, namespaceFromKey(string(key)))
		}
	}
	return names, nil
}

// Close releases the local database.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv == nil {
		return nil
	}
	return c.kv.Close()
}
