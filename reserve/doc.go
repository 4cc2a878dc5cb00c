/*
Package reserve splits a pool's collateral between its leverage claim and its
liquidity claim.

A pool with leverage tier k gives the leverage claim a multiplier of l = 1+2^k
and the liquidity claim a collateralization ratio of r = 1+2^-k. The
saturation tick s marks the price at which the split changes regime. For a
pool holding T at the current tick c:

	| Zone       | Condition | Share computed directly                       |
	| ---------- | --------- | --------------------------------------------- |
	| power      | c < s     | leverage  = T/l * 1.0001^((c-s) * 2^k / 2^42)  |
	| saturation | c >= s    | liquidity = T/r * 1.0001^((s-c) * 2^-k / 2^42) |

The other claim always receives the remainder so the two shares add up to T
exactly. The extreme ticks are sentinels: a saturation tick of tick.Min leaves
a single unit to the liquidity claim and tick.Max a single unit to the
leverage claim.

SaturationTick inverts the split: given the two reserves it returns the
saturation tick that reproduces them at the current tick.
*/
package reserve
