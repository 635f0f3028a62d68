package utils

import (
	"fmt"
	"math/rand"

	dockertest "github.com/ory/dockertest/v3"
)

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randResourceNameSuffix(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}

// testNetwork is the docker network a test container is attached to. Networks the helpers
// created themselves are removed on release, external ones are left alone.
type testNetwork struct {
	pool    *dockertest.Pool
	network *dockertest.Network
	created bool
}

func (n testNetwork) Name() string {
	return n.network.Network.Name
}

func (n testNetwork) release() error {
	if !n.created {
		return nil
	}
	return n.pool.RemoveNetwork(n.network)
}

// attachNetwork creates a throwaway network, or resolves an existing one when networkID is set.
func attachNetwork(pool *dockertest.Pool, networkID string) (testNetwork, error) {
	if networkID == "" {
		network, err := pool.CreateNetwork(fmt.Sprintf("tokenfactory-test-%s", randResourceNameSuffix(10)))
		if err != nil {
			return testNetwork{}, err
		}
		return testNetwork{pool: pool, network: network, created: true}, nil
	}

	network, err := networkByID(pool, networkID)
	if err != nil {
		return testNetwork{}, err
	}
	return testNetwork{pool: pool, network: network}, nil
}

func networkByID(pool *dockertest.Pool, networkID string) (*dockertest.Network, error) {
	external, err := pool.Client.ListNetworks()
	if err != nil {
		return nil, err
	}

	for _, candidate := range external {
		if candidate.ID != networkID {
			continue
		}

		byName, err := pool.NetworksByName(candidate.Name)
		if err != nil {
			return nil, err
		}
		if len(byName) == 0 {
			return nil, fmt.Errorf("could not find network with ID %s by name: %s", networkID, candidate.Name)
		}
		return &byName[0], nil
	}

	return nil, fmt.Errorf("could not find network by ID: %s", networkID)
}
