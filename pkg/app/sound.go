package app

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate        = 48000
	explosionSoundLen = 0.35 // 秒
	soundVolume       = 0.4
)

// soundPlayer 播放合成的爆炸音效
// 波形在创建时生成一次，每次爆炸新建一个播放器，播放结束后回收
type soundPlayer struct {
	ctx     *audio.Context
	pcm     []byte
	playing []*audio.Player
}

func newSoundPlayer(ctx *audio.Context) *soundPlayer {
	return &soundPlayer{
		ctx: ctx,
		pcm: explosionPCM(sampleRate, explosionSoundLen),
	}
}

// PlayExplosion 播放一次爆炸音效
func (s *soundPlayer) PlayExplosion() {
	if s == nil || s.ctx == nil {
		return
	}

	kept := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			kept = append(kept, p)
		}
	}
	s.playing = kept

	player := s.ctx.NewPlayerFromBytes(s.pcm)
	player.SetVolume(soundVolume)
	player.Play()
	s.playing = append(s.playing, player)
}

// explosionPCM 生成指数衰减的白噪声（16 位有符号小端、双声道）
func explosionPCM(rate int, duration float64) []byte {
	frames := int(float64(rate) * duration)
	buf := make([]byte, frames*4)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < frames; i++ {
		t := float64(i) / float64(rate)
		envelope := math.Exp(-t * 12)
		sample := int16((rng.Float64()*2 - 1) * envelope * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
