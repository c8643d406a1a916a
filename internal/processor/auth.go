package processor

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

const (
	moduleAuth                    = "auth"
	commandRegisterMultisignature = "registerMultisignature"
)

func authEntries() []Entry {
	return []Entry{
		entry(moduleAuth, commandRegisterMultisignature, applyRegisterMultisignature, revertRegisterMultisignature),
	}
}

type registerMultisignatureParams struct {
	NumberOfSignatures uint32   `json:"numberOfSignatures"`
	MandatoryKeys      []string `json:"mandatoryKeys"`
	OptionalKeys       []string `json:"optionalKeys"`
}

func multisigMembers(env *Env, in Input) ([]model.MultisigMember, error) {
	var p registerMultisignatureParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return nil, err
	}

	members := make([]model.MultisigMember, 0, len(p.MandatoryKeys)+len(p.OptionalKeys))
	add := func(keys []string, typ model.MultisigMemberType) error {
		for _, key := range keys {
			addr, err := env.Addresses.FromPublicKey(key)
			if err != nil {
				return fmt.Errorf("%w: multisignature key: %v", ErrInvalidParams, err)
			}
			members = append(members, model.MultisigMember{
				GroupAddress:  in.Tx.SenderAddress,
				MemberAddress: addr,
				PublicKey:     key,
				Type:          typ,
				Height:        in.Header.Height,
			})
		}
		return nil
	}
	if err := add(p.MandatoryKeys, model.MultisigMandatory); err != nil {
		return nil, err
	}
	if err := add(p.OptionalKeys, model.MultisigOptional); err != nil {
		return nil, err
	}
	return members, nil
}

func applyRegisterMultisignature(ctx context.Context, env *Env, in Input) error {
	members, err := multisigMembers(env, in)
	if err != nil {
		return err
	}
	if _, err := repository.MultisigMembers.Upsert(ctx, in.DB, members); err != nil {
		return err
	}
	for _, m := range members {
		env.Accounts.MarkAddress(m.MemberAddress)
	}
	env.Accounts.MarkAddress(in.Tx.SenderAddress)
	return nil
}

func revertRegisterMultisignature(ctx context.Context, env *Env, in Input) error {
	members, err := multisigMembers(env, in)
	if err != nil {
		return err
	}
	if len(members) > 0 {
		keys := make([]string, len(members))
		for i, m := range members {
			keys[i] = m.PublicKey
		}
		q := storage.Where(
			storage.Eq("group_address", in.Tx.SenderAddress),
			storage.In("public_key", keys...),
		)
		if _, err := repository.MultisigMembers.Delete(ctx, in.DB, q); err != nil {
			return err
		}
	}
	for _, m := range members {
		env.Accounts.MarkAddress(m.MemberAddress)
	}
	env.Accounts.MarkAddress(in.Tx.SenderAddress)
	return nil
}
