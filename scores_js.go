//go:build js
// +build js

package main

import (
	"encoding/json"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/sorades-invaders/game"
)

const scoreEndpoint = "/api/highscore"

// scoreMessage mirrors the server's /api/highscore body.
type scoreMessage struct {
	Score int `json:"score"`
}

// fetchServerScore reads the server's best score and hands it to done.
// Failures leave the local score in place.
func fetchServerScore(done func(int)) {
	requestScore(js.M{"method": "GET"}, done)
}

// postServerScore submits score and hands the server's best to done.
func postServerScore(score int, done func(int)) {
	body, err := json.Marshal(scoreMessage{Score: score})
	if err != nil {
		return
	}
	requestScore(js.M{
		"method":  "POST",
		"headers": js.M{"Content-Type": "application/json"},
		"body":    string(body),
	}, done)
}

func requestScore(init js.M, done func(int)) {
	js.Global.Call("fetch", scoreEndpoint, init).
		Call("then", func(resp *js.Object) *js.Object {
			if !resp.Get("ok").Bool() {
				return js.Global.Get("Promise").Call("reject", "status "+resp.Get("status").String())
			}
			return resp.Call("text")
		}).
		Call("then", func(text string) {
			var msg scoreMessage
			if err := json.Unmarshal([]byte(text), &msg); err != nil {
				game.Debug("bad score response:", err.Error())
				return
			}
			done(max(msg.Score, 0))
		}).
		Call("catch", func(reason *js.Object) {
			game.Debug("score server unavailable:", reason.String())
		})
}
