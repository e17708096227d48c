package btyaml

import "github.com/joeycumines/content-bt/address"

// wireAddress is the {id, index} wire form of an address.Address.
type wireAddress struct {
	ID    int32 `yaml:"id"`
	Index int   `yaml:"index"`
}

func encodeAddress(a address.Address) wireAddress {
	return wireAddress{ID: a.ID, Index: a.Index}
}

func decodeAddress(w wireAddress) address.Address {
	return address.New(w.ID, w.Index)
}
