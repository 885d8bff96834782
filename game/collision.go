package game

// ResolveCollisions tests every active shot once, in slot order. The first
// match wins and consumes the shot:
//
//  1. any active barrier, whoever fired
//  2. the ship, for enemy shots
//  3. the lowest-index live enemy, for ship shots
//
// A shot stopped by a barrier never reaches the ship or an enemy in the
// same pass.
func (g *Game) ResolveCollisions() {
	active := g.Enemies[:g.Level.SpawnCount]

	g.Shots.ForEachActive(func(s *Shot, i int) {
		if g.hitBarrier(s.Rect) {
			g.Shots.Release(i)
			return
		}

		switch s.Origin {
		case OriginEnemy:
			if !s.Overlaps(g.Ship.Rect) {
				return
			}
			g.Shots.Release(i)
			if g.Ship.Lives > 0 {
				g.Ship.Lives--
			}
			g.emit(EventShipHit, s.CenterX(), s.Bottom(), -1)
			Debugf("ship hit, %d lives left", g.Ship.Lives)

		case OriginShip:
			e := g.broad.firstHit(s.Rect, active)
			if e < 0 {
				return
			}
			g.Shots.Release(i)
			g.killEnemy(e)
			g.Ship.Score += g.Tuning.KillBonus
		}
	})
}
