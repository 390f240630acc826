package chat

// RunPositions derives the bubble position of each message from its sender.
// Consecutive messages from one sender form a run; self identifies the local
// user.
func RunPositions(senders []string, self string) []BubblePosition {
	positions := make([]BubblePosition, len(senders))
	for i, sender := range senders {
		positions[i] = BubblePosition{
			IsMine:  sender == self,
			IsFirst: i == 0 || senders[i-1] != sender,
			IsLast:  i == len(senders)-1 || senders[i+1] != sender,
		}
	}
	return positions
}
