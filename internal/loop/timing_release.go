//go:build release

package loop

// NoAttackTicks is how long the player has to stay unharmed to earn a wider
// weapon.
const NoAttackTicks = 5000
