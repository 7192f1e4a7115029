/*
Package token implements the ADW token contract.

ADW is a NEP-17 compatible fungible token with three access-control
behaviors bolted on top of the standard balance ledger: role-gated
minting, role-gated pause/unpause and single-owner transfer of
ownership.

The contract is constructed once at deployment. Deploy data carries the
owner account, token name, ticker symbol and initial supply. The whole
initial supply is credited to the owner, which is also granted both
Admin and Minter roles and set as the contract owner.

Admin and owner are independent authority channels. Admins manage the
pause gate and role membership. The owner manages only the ownership
slot itself and contract updates; it does not gate minting, pausing or
role grants. Revoking the Admin role from the last administrator is not
prevented: the admin set can become empty, leaving the pause gate and
role sets frozen forever. Role administration itself is never blocked
by the pause gate.

Token amounts use 18 decimal places. Total supply always equals the sum
of all account balances: it grows only via mint and never otherwise.
Delegated spending follows the usual allowance scheme: approve sets an
absolute allowance, transferFrom consumes it atomically with the
balance move.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. Minting
produces it with an empty from field.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. Produced when an allowance is set.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

RoleGranted and RoleRevoked notifications. Produced on effective role
membership changes; idempotent grants and revokes do not notify.

	RoleGranted:
	  - name: role
	    type: Integer
	  - name: account
	    type: Hash160
	  - name: grantedBy
	    type: Hash160

	RoleRevoked:
	  - name: role
	    type: Integer
	  - name: account
	    type: Hash160
	  - name: revokedBy
	    type: Hash160

Paused and Unpaused notifications. Produced on pause gate transitions.

	Paused:
	  - name: by
	    type: Hash160

	Unpaused:
	  - name: by
	    type: Hash160

OwnershipTransferred notification. Produced when the owner slot is
replaced.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'n' -> string
   token name set at deployment
 - 't' -> string
   token ticker symbol set at deployment
 - 'o' -> interop.Hash160
   contract owner account
 - 'g' -> int
   pause flag, present (1) only while transfers are paused
 - 'TokenCirculation' -> int
   total amount of tokens in circulation
 - a<interop.Hash160> -> int
   balance sheet of all token holders, zero balances are deleted
 - w<owner interop.Hash160><spender interop.Hash160> -> int
   delegated spending allowances, zero allowances are deleted
 - r<roles.Role> -> std.Serialize([][]byte)
   role membership lists keyed by role value

# Accounting
Contract stores balances and allowances of all token holders and the
access-control state governing their mutation.
*/
