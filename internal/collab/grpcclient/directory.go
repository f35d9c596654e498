package grpcclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"HedgeRouter/internal/collab"
	"HedgeRouter/internal/hedge"
)

// Directory resolves collaborator references against fixed gateway
// endpoints: one for the vault subsystem, one for the protection issuer.
// Resolved clients are cached per reference — GetVaultInfo/GetContractInfo
// round trips happen once per reference, not once per composition.
type Directory struct {
	vaultConn      *grpc.ClientConn
	protectionConn *grpc.ClientConn
	resolveTimeout time.Duration

	mu          sync.Mutex
	vaults      map[hedge.Ref]*VaultClient
	protections map[hedge.Ref]*ProtectionClient
}

// DialDirectory connects to both gateways.
func DialDirectory(vaultAddr, protectionAddr string, resolveTimeout time.Duration) (*Directory, error) {
	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	vaultConn, err := grpc.NewClient(vaultAddr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial vault gateway %s: %w", vaultAddr, err)
	}

	protectionConn, err := grpc.NewClient(protectionAddr, opts...)
	if err != nil {
		vaultConn.Close()
		return nil, fmt.Errorf("dial protection gateway %s: %w", protectionAddr, err)
	}

	return &Directory{
		vaultConn:      vaultConn,
		protectionConn: protectionConn,
		resolveTimeout: resolveTimeout,
		vaults:         make(map[hedge.Ref]*VaultClient),
		protections:    make(map[hedge.Ref]*ProtectionClient),
	}, nil
}

func (d *Directory) Vault(ref hedge.Ref) (collab.Vault, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.vaults[ref]; ok {
		return c, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.resolveTimeout)
	defer cancel()

	c, err := NewVaultClient(ctx, d.vaultConn, ref)
	if err != nil {
		return nil, err
	}
	d.vaults[ref] = c
	return c, nil
}

func (d *Directory) Protection(ref hedge.Ref) (collab.Protection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.protections[ref]; ok {
		return c, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.resolveTimeout)
	defer cancel()

	c, err := NewProtectionClient(ctx, d.protectionConn, ref)
	if err != nil {
		return nil, err
	}
	d.protections[ref] = c
	return c, nil
}

// ProtectionConn exposes the protection gateway connection for the factory
// client, which shares the same endpoint.
func (d *Directory) ProtectionConn() *grpc.ClientConn {
	return d.protectionConn
}

// Close tears down both gateway connections.
func (d *Directory) Close() error {
	verr := d.vaultConn.Close()
	perr := d.protectionConn.Close()
	if verr != nil {
		return verr
	}
	return perr
}
