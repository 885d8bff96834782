package game

// AdvanceShots moves every active shot by its speed: ship shots up, enemy
// shots down. A shot that has left the field entirely is retired.
func (g *Game) AdvanceShots(dt float64) {
	height := g.Tuning.FieldHeight
	g.Shots.ForEachActive(func(s *Shot, i int) {
		if s.Origin == OriginEnemy {
			s.Y += s.Speed * dt
		} else {
			s.Y -= s.Speed * dt
		}

		if s.Bottom() <= 0 || s.Y >= height {
			g.Shots.Release(i)
		}
	})
}
