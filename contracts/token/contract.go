package token

import (
	"github.com/adwait-network/adw-contract/common"
	"github.com/adwait-network/adw-contract/contracts/token/roles"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Amount of decimals.
	Decimals int
	// Storage key for circulation value.
	CirculationKey string
}

const (
	decimals    = 18
	circulation = "TokenCirculation"

	nameKey   = 'n'
	symbolKey = 't'
	ownerKey  = 'o'
	pausedKey = 'g'

	accPrefix       = 'a'
	allowancePrefix = 'w'
	rolePrefix      = 'r'

	// maxSupplyDec is the largest value a NeoVM integer can hold (2^255-1),
	// decimal-encoded because the literal does not fit any Go integer type.
	maxSupplyDec = "57896044618658097711785492504343953926634992332820282019728792003956564819967"
)

// Error messages thrown by the contract.
const (
	ErrUnauthorized          = "unauthorized"
	ErrPaused                = "token transfers are paused"
	ErrAlreadyPaused         = "already paused"
	ErrNotPaused             = "not paused"
	ErrInsufficientBalance   = "insufficient balance"
	ErrInsufficientAllowance = "insufficient allowance"
	ErrInvalidRecipient      = "invalid recipient"
	ErrInvalidSender         = "invalid sender"
	ErrSupplyOverflow        = "total supply overflow"
	ErrNegativeAmount        = "negative amount"
	ErrUnknownRole           = "unknown role"
)

var token Token

func createToken() Token {
	return Token{
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	owner := args[0].(interop.Hash160)
	name := args[1].(string)
	symbol := args[2].(string)
	initialSupply := args[3].(int)

	if !isValidAccount(owner) {
		panic("invalid owner")
	}
	if initialSupply < 0 {
		panic(ErrNegativeAmount)
	}

	storage.Put(ctx, nameKey, name)
	storage.Put(ctx, symbolKey, symbol)
	storage.Put(ctx, ownerKey, owner)

	addToRole(ctx, roles.Admin, owner)
	addToRole(ctx, roles.Minter, owner)

	if initialSupply > 0 {
		setBalance(ctx, owner, initialSupply)
		storage.Put(ctx, token.CirculationKey, initialSupply)
		runtime.Notify("Transfer", nil, owner, initialSupply)
	}

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	if !runtime.CheckWitness(getOwner(ctx)) {
		panic("only contract owner can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Name returns the token name set at deployment.
func Name() string {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, nameKey).(string)
}

// Symbol is a NEP-17 standard method that returns the token ticker symbol.
func Symbol() string {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, symbolKey).(string)
}

// Decimals is a NEP-17 standard method that returns precision of token
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// tokens in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of the
// specified account. Missing accounts have zero balance.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getBalance(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one account
// to another. It can be invoked only by the account owner (or by the sending
// contract itself) and only while transfers are not paused.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	token.transfer(ctx, from, to, amount, data)
	return true
}

// Approve sets the amount spender is allowed to transfer from the owner
// account via [TransferFrom]. The allowance is set absolutely, not
// incremented. It can be invoked only by the allowance owner. Approvals are
// deliberately not gated by the pause flag, only the resulting transfers are.
//
// It produces Approval notification.
func Approve(owner, spender interop.Hash160, amount int) {
	ctx := storage.GetContext()

	if amount < 0 {
		panic(ErrNegativeAmount)
	}
	if !isValidAccount(spender) {
		panic(ErrInvalidRecipient)
	}
	if !isUsableAddress(owner) {
		panic(common.ErrWitnessFailed)
	}

	key := allowanceKey(owner, spender)
	if amount == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, amount)
	}

	runtime.Notify("Approval", owner, spender, amount)
}

// Allowance returns the amount spender is still allowed to transfer from the
// owner account. Missing allowances are zero.
func Allowance(owner, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getAllowance(ctx, owner, spender)
}

// TransferFrom moves tokens from one account to another consuming the
// spender's allowance. It can be invoked only by the spender and only while
// transfers are not paused.
//
// It produces Transfer notification.
func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	if amount < 0 {
		panic(ErrNegativeAmount)
	}
	if len(from) != interop.Hash160Len {
		panic(ErrInvalidSender)
	}
	if !isValidAccount(to) {
		panic(ErrInvalidRecipient)
	}
	if !isUsableAddress(spender) {
		panic(common.ErrWitnessFailed)
	}
	requireActive(ctx)

	allowance := getAllowance(ctx, from, spender)
	if allowance < amount {
		panic(ErrInsufficientAllowance)
	}

	key := allowanceKey(from, spender)
	if allowance == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, allowance-amount)
	}

	token.move(ctx, from, to, amount, data)
	return true
}

// Mint issues amount of new tokens to the specified account increasing total
// supply. It can be invoked only by an account holding the Minter role and
// only while transfers are not paused.
//
// It produces Transfer notification with empty from field.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	requireRole(ctx, roles.Minter)
	requireActive(ctx)

	if amount < 0 {
		panic(ErrNegativeAmount)
	}
	if !isValidAccount(to) {
		panic(ErrInvalidRecipient)
	}

	supply := token.getSupply(ctx)
	if amount > std.Atoi(maxSupplyDec, 10)-supply {
		panic(ErrSupplyOverflow)
	}

	setBalance(ctx, to, getBalance(ctx, to)+amount)
	storage.Put(ctx, token.CirculationKey, supply+amount)

	runtime.Notify("Transfer", nil, to, amount)
	runtime.Log("tokens minted")
	postTransfer(nil, to, amount, nil)
}

// Pause stops all balance-mutating operations until [Unpause]. It can be
// invoked only by an account holding the Admin role and only while transfers
// are active.
//
// It produces Paused notification.
func Pause() {
	ctx := storage.GetContext()

	admin := requireRole(ctx, roles.Admin)
	if isPaused(ctx) {
		panic(ErrAlreadyPaused)
	}

	storage.Put(ctx, pausedKey, 1)

	runtime.Notify("Paused", admin)
	runtime.Log("token transfers paused")
}

// Unpause resumes balance-mutating operations. It can be invoked only by an
// account holding the Admin role and only while transfers are paused.
//
// It produces Unpaused notification.
func Unpause() {
	ctx := storage.GetContext()

	admin := requireRole(ctx, roles.Admin)
	if !isPaused(ctx) {
		panic(ErrNotPaused)
	}

	storage.Delete(ctx, pausedKey)

	runtime.Notify("Unpaused", admin)
	runtime.Log("token transfers resumed")
}

// IsPaused returns true if balance-mutating operations are currently stopped.
func IsPaused() bool {
	ctx := storage.GetReadOnlyContext()
	return isPaused(ctx)
}

// HasRole returns true if the account holds the specified role. It panics on
// unknown role values.
func HasRole(role roles.Role, account interop.Hash160) bool {
	checkRole(role)

	ctx := storage.GetReadOnlyContext()
	return common.ListContains(common.GetList(ctx, roleKey(role)), account)
}

// IsAdmin returns true if the account holds the Admin role.
func IsAdmin(account interop.Hash160) bool {
	return HasRole(roles.Admin, account)
}

// IsMinter returns true if the account holds the Minter role.
func IsMinter(account interop.Hash160) bool {
	return HasRole(roles.Minter, account)
}

// GrantRole adds the account to the specified role set. It can be invoked
// only by an account holding the Admin role. Granting an already held role is
// a silent no-op.
//
// It produces RoleGranted notification.
func GrantRole(role roles.Role, account interop.Hash160) {
	grantRole(storage.GetContext(), role, account)
}

// RevokeRole removes the account from the specified role set. It can be
// invoked only by an account holding the Admin role. Revoking a role that is
// not held is a silent no-op. Revoking the Admin role from the last
// administrator is not prevented, the role set can become empty and
// unmanageable.
//
// It produces RoleRevoked notification.
func RevokeRole(role roles.Role, account interop.Hash160) {
	revokeRole(storage.GetContext(), role, account)
}

// GrantMinterRole is a convenience wrapper over [GrantRole] for the Minter
// role.
func GrantMinterRole(account interop.Hash160) {
	grantRole(storage.GetContext(), roles.Minter, account)
}

// RevokeMinterRole is a convenience wrapper over [RevokeRole] for the Minter
// role.
func RevokeMinterRole(account interop.Hash160) {
	revokeRole(storage.GetContext(), roles.Minter, account)
}

// Owner returns the current contract owner account. The owner governs only
// the ownership slot itself (and contract updates), not minting or pausing.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getOwner(ctx)
}

// TransferOwnership replaces the contract owner. It can be invoked only by
// the current owner.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()

	owner := getOwner(ctx)
	common.CheckOwnerWitness(owner)

	if !isValidAccount(newOwner) {
		panic(ErrInvalidRecipient)
	}

	storage.Put(ctx, ownerKey, newOwner)

	runtime.Notify("OwnershipTransferred", owner, newOwner)
}

// Holders returns an iterator over all accounts with a non-zero balance.
// Iteration is through key-value pairs, where key is the account and value is
// its token balance.
func Holders() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{accPrefix}, storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// transfer validates a direct transfer and then moves the requested amount.
func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) {
	if amount < 0 {
		panic(ErrNegativeAmount)
	}
	if !isValidAccount(to) {
		panic(ErrInvalidRecipient)
	}
	if !isUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}
	requireActive(ctx)

	t.move(ctx, from, to, amount, data)
}

// move debits from and credits to atomically. Guards except the balance check
// must have been applied by the caller.
func (t Token) move(ctx storage.Context, from, to interop.Hash160, amount int, data any) {
	fromBalance := getBalance(ctx, from)
	if fromBalance < amount {
		panic(ErrInsufficientBalance)
	}

	setBalance(ctx, from, fromBalance-amount)
	setBalance(ctx, to, getBalance(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)
	postTransfer(from, to, amount, data)
}

// postTransfer notifies a contract recipient about the received tokens as the
// NEP-17 standard requires.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func getBalance(ctx storage.Context, account interop.Hash160) int {
	raw := storage.Get(ctx, append([]byte{accPrefix}, account...))
	if raw != nil {
		return raw.(int)
	}

	return 0
}

func setBalance(ctx storage.Context, account interop.Hash160, amount int) {
	key := append([]byte{accPrefix}, account...)
	if amount == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, amount)
	}
}

func getAllowance(ctx storage.Context, owner, spender interop.Hash160) int {
	raw := storage.Get(ctx, allowanceKey(owner, spender))
	if raw != nil {
		return raw.(int)
	}

	return 0
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	return append(append([]byte{allowancePrefix}, owner...), spender...)
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func isPaused(ctx storage.Context) bool {
	return storage.Get(ctx, pausedKey) != nil
}

// requireActive panics if the pause gate is set. Role and ownership
// administration is never gated, only balance mutations are.
func requireActive(ctx storage.Context) {
	if isPaused(ctx) {
		panic(ErrPaused)
	}
}

// requireRole returns the first member of the role set the carrier
// transaction is witnessed by. It panics if there is none.
func requireRole(ctx storage.Context, role roles.Role) interop.Hash160 {
	members := common.GetList(ctx, roleKey(role))
	for i := range members {
		if runtime.CheckWitness(members[i]) {
			return members[i]
		}
	}

	panic(ErrUnauthorized)
}

func grantRole(ctx storage.Context, role roles.Role, account interop.Hash160) {
	checkRole(role)
	if !isValidAccount(account) {
		panic(ErrInvalidRecipient)
	}

	admin := requireRole(ctx, roles.Admin)

	if addToRole(ctx, role, account) {
		runtime.Notify("RoleGranted", role, account, admin)
	}
}

func revokeRole(ctx storage.Context, role roles.Role, account interop.Hash160) {
	checkRole(role)

	admin := requireRole(ctx, roles.Admin)

	key := roleKey(role)
	members := common.GetList(ctx, key)
	if !common.ListContains(members, account) {
		return
	}

	common.SetSerialized(ctx, key, common.ListRemove(members, account))
	runtime.Notify("RoleRevoked", role, account, admin)
}

// addToRole adds the account to the role set skipping the authorization
// check. It returns false if the account already holds the role.
func addToRole(ctx storage.Context, role roles.Role, account interop.Hash160) bool {
	key := roleKey(role)
	members := common.GetList(ctx, key)
	if common.ListContains(members, account) {
		return false
	}

	common.SetSerialized(ctx, key, append(members, account))
	return true
}

func roleKey(role roles.Role) []byte {
	var raw any = int(role)
	return append([]byte{rolePrefix}, raw.([]byte)...)
}

func checkRole(role roles.Role) {
	if role != roles.Admin && role != roles.Minter {
		panic(ErrUnknownRole)
	}
}

func isValidAccount(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return false
	}

	for i := range addr {
		if addr[i] != 0 {
			return true
		}
	}

	return false
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}
